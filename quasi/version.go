package quasi

import (
	"github.com/kolkov/quasiatomic/internal/quasi/arch"
)

// Version information for the quasi-atomic word facility.
const (
	// Version is the current version of the facility.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the facility.
type Info struct {
	// Version is the facility version string.
	Version string

	// ISA is the host instruction set name.
	ISA string

	// Fallback indicates whether 64-bit word operations on this host
	// serialize through the swap mutex pool.
	Fallback bool

	// LSE indicates ARMv8.1 single-instruction atomics on the host
	// (always false off arm64).
	LSE bool
}

// GetInfo returns information about the facility on the running host.
//
// Example:
//
//	info := quasi.GetInfo()
//	fmt.Printf("quasiatomic %s on %s (fallback=%v)\n", info.Version, info.ISA, info.Fallback)
func GetInfo() Info {
	isa := arch.Host()
	return Info{
		Version:  Version,
		ISA:      isa.String(),
		Fallback: arch.RequiresFallback(isa),
		LSE:      arch.HostFeatures().LSE,
	}
}
