// version.go implements the 'quasistress version' command.
package main

import (
	"fmt"

	"github.com/kolkov/quasiatomic/quasi"
)

// versionCommand prints the facility version and the host policy.
func versionCommand() {
	info := quasi.GetInfo()

	fmt.Printf("quasistress (quasiatomic %s)\n", info.Version)
	fmt.Printf("  isa:      %s\n", info.ISA)
	fmt.Printf("  fallback: %v\n", info.Fallback)
	fmt.Printf("  lse:      %v\n", info.LSE)
}
