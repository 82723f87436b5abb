// torture.go implements the 'quasistress torture' command.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/quasiatomic/internal/quasi/facility"
)

// tortureConfig holds the parsed torture options.
type tortureConfig struct {
	workers  int
	iters    int
	words    int
	fallback bool
}

// tortureCommand implements the 'quasistress torture' command.
//
// Every worker writes values whose two 32-bit halves carry the same
// pattern, derived from a per-worker xxhash seed so no two workers ever
// produce the same payload. A read that returns mismatched halves is a
// torn observation; a final value with mismatched halves is corruption.
// Either one fails the run.
func tortureCommand(args []string) {
	cfg, err := parseTortureArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f := facility.New(facility.Config{ForceFallback: cfg.fallback})
	defer f.Shutdown()

	backend := "native"
	if f.UsesFallback() {
		backend = "fallback"
	}
	fmt.Printf("torture: %d workers x %d writes over %d words (%s backend, isa=%s)\n",
		cfg.workers, cfg.iters, cfg.words, backend, f.ISA())

	words := make([]int64, cfg.words)

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < cfg.workers; w++ {
		id := w
		g.Go(func() error {
			// Distinct, well-mixed 64-bit base pattern per worker.
			base := xxhash.Sum64String(fmt.Sprintf("quasistress-worker-%d", id))
			for i := 0; i < cfg.iters; i++ {
				mix := base + uint64(i)*0x9E3779B97F4A7C15
				half := uint64(uint32(mix ^ mix>>32))
				v := int64(half<<32 | half)

				addr := &words[(id+i)%len(words)]
				f.Write64(addr, v)

				got := uint64(f.Read64(addr))
				if uint32(got>>32) != uint32(got) {
					return fmt.Errorf("worker %d: torn read %#x at word %d",
						id, got, (id+i)%len(words))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	for i := range words {
		got := uint64(f.Read64(&words[i]))
		if uint32(got>>32) != uint32(got) {
			fmt.Fprintf(os.Stderr, "FAIL: corrupted final value %#x at word %d\n", got, i)
			os.Exit(1)
		}
	}

	total := cfg.workers * cfg.iters
	fmt.Printf("PASS: %d writes observed as atomic units in %v (%.0f ops/sec)\n",
		total, elapsed.Round(time.Millisecond),
		float64(2*total)/elapsed.Seconds())
}

// parseTortureArgs parses torture command options.
//
// Supported flags (all quasistress commands use -name=value):
//
//	-workers=N  -iters=N  -words=N  -fallback
func parseTortureArgs(args []string) (*tortureConfig, error) {
	cfg := &tortureConfig{
		workers: 64,
		iters:   1000,
		words:   64,
	}

	for _, arg := range args {
		switch {
		case arg == "-fallback":
			cfg.fallback = true
		case strings.HasPrefix(arg, "-workers="):
			n, err := parsePositive(arg, "-workers=")
			if err != nil {
				return nil, err
			}
			cfg.workers = n
		case strings.HasPrefix(arg, "-iters="):
			n, err := parsePositive(arg, "-iters=")
			if err != nil {
				return nil, err
			}
			cfg.iters = n
		case strings.HasPrefix(arg, "-words="):
			n, err := parsePositive(arg, "-words=")
			if err != nil {
				return nil, err
			}
			cfg.words = n
		default:
			return nil, fmt.Errorf("unknown option: %s", arg)
		}
	}

	return cfg, nil
}

// parsePositive extracts a positive integer from a -name=value flag.
func parsePositive(arg, prefix string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, prefix))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s requires a positive integer, got %q",
			strings.TrimSuffix(prefix, "="), strings.TrimPrefix(arg, prefix))
	}
	return n, nil
}
