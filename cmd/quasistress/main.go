// Package main implements the quasistress CLI tool.
//
// quasistress exercises the quasi-atomic 64-bit word facility from the
// outside, the way a runtime's torture suite would:
//
//  1. Spawning worker goroutines that hammer shared words with
//     tear-revealing value patterns
//  2. Verifying every observed value is exactly some writer's value
//  3. Reporting stripe distribution for the fallback backend
//
// Usage:
//
//	quasistress torture [options]   # concurrent no-tearing torture run
//	quasistress stripes [options]   # address-to-stripe distribution report
//	quasistress version             # facility version and host policy
//
// This is the CLI entry point for the standalone stress tool.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "torture":
		tortureCommand(os.Args[2:])
	case "stripes":
		stripesCommand(os.Args[2:])
	case "version", "--version", "-v":
		versionCommand()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`quasistress - Quasi-Atomic Word Facility Stress Tool

USAGE:
    quasistress <command> [options]

COMMANDS:
    torture     Run a concurrent no-tearing torture test
    stripes     Report address-to-stripe distribution of the fallback pool
    version     Print facility version and host architecture policy
    help        Show this help message

TORTURE OPTIONS:
    -workers=N    Number of concurrent worker goroutines (default 64)
    -iters=N      Writes per worker (default 1000)
    -words=N      Number of distinct shared words (default 64)
    -fallback     Force the mutex-striped fallback backend

STRIPES OPTIONS:
    -words=N      Number of sequential words to map (default 4096)

EXAMPLES:
    quasistress torture -workers=64 -iters=1000 -fallback
    quasistress stripes -words=65536
    quasistress version
`)
}
