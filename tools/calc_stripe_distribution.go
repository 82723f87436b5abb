//go:build ignore
// +build ignore

// This tool evaluates the address-to-stripe hash over several realistic
// address shapes: a packed int64 slice, spaced struct fields and
// individually heap-allocated words.
// Run with: go run tools/calc_stripe_distribution.go
package main

import (
	"fmt"

	"github.com/kolkov/quasiatomic/internal/quasi/stripe"
)

// spaced mimics a struct with a 64-bit counter among other fields, so
// consecutive counters sit 64 bytes apart instead of 8.
type spaced struct {
	counter int64
	_       [56]byte
}

func main() {
	pool := stripe.NewPool()
	defer pool.Release()

	report(pool, "packed slice", packedAddrs(4096))
	report(pool, "spaced fields", spacedAddrs(4096))
	report(pool, "heap words", heapAddrs(4096))
}

func packedAddrs(n int) []*int64 {
	words := make([]int64, n)
	addrs := make([]*int64, n)
	for i := range words {
		addrs[i] = &words[i]
	}
	return addrs
}

func spacedAddrs(n int) []*int64 {
	fields := make([]spaced, n)
	addrs := make([]*int64, n)
	for i := range fields {
		addrs[i] = &fields[i].counter
	}
	return addrs
}

func heapAddrs(n int) []*int64 {
	addrs := make([]*int64, n)
	for i := range addrs {
		addrs[i] = new(int64)
	}
	return addrs
}

func report(pool *stripe.Pool, name string, addrs []*int64) {
	var hist [stripe.SwapMutexCount]int
	for _, addr := range addrs {
		hist[pool.Index(addr)]++
	}

	min, max := hist[0], hist[0]
	for _, n := range hist {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}

	ideal := float64(len(addrs)) / stripe.SwapMutexCount
	fmt.Printf("%-14s n=%d min=%d max=%d ideal=%.1f skew=%.2fx\n",
		name, len(addrs), min, max, ideal, float64(max)/ideal)
}
