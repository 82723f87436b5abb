// stripes.go implements the 'quasistress stripes' command.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kolkov/quasiatomic/internal/quasi/facility"
	"github.com/kolkov/quasiatomic/internal/quasi/stripe"
)

// stripesCommand implements the 'quasistress stripes' command.
//
// It allocates a run of sequential 64-bit words, maps each through the
// fallback pool's address hash and prints the resulting histogram.
// Distribution affects only contention, never correctness, but a badly
// skewed histogram is worth knowing about before deploying on a
// fallback architecture.
func stripesCommand(args []string) {
	words := 4096
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-words="):
			n, err := parsePositive(arg, "-words=")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			words = n
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
			os.Exit(1)
		}
	}

	f := facility.New(facility.Config{ForceFallback: true})
	defer f.Shutdown()
	pool := f.Pool()

	backing := make([]int64, words)
	var hist [stripe.SwapMutexCount]int
	for i := range backing {
		hist[pool.Index(&backing[i])]++
	}

	fmt.Printf("stripes: %d sequential words over %d locks\n", words, stripe.SwapMutexCount)

	min, max := hist[0], hist[0]
	for idx, n := range hist {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
		bar := strings.Repeat("#", n*48/(words/stripe.SwapMutexCount+1))
		fmt.Printf("  %2d: %6d %s\n", idx, n, bar)
	}

	ideal := float64(words) / stripe.SwapMutexCount
	fmt.Printf("min=%d max=%d ideal=%.1f\n", min, max, ideal)
}
