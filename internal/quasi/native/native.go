// Package native implements the native backend for quasi-atomic 64-bit
// word operations.
//
// On targets with tear-free wide atomics, every operation maps to a
// single sync/atomic call, which the compiler lowers to the widest
// atomic instruction the target offers. On 64-bit pointer widths a plain
// aligned load already cannot tear; sync/atomic additionally gives the
// sequentially consistent ordering the facility promises.
//
// The one per-target difference is the 64-bit store: targets without a
// direct atomic 64-bit store instruction (the exclusive load/store-
// conditional class) get a compare-and-swap retry loop instead. See
// store_direct.go and store_casloop.go.
//
// Addresses must be 64-bit aligned. The caller owns the memory for the
// duration of every call; this backend never allocates, copies, or
// frees it.
package native

import "sync/atomic"

// Backend performs 64-bit word operations with native atomics.
//
// The zero value is ready to use; Backend carries no state.
type Backend struct{}

// Read returns the 64-bit value at addr as a single indivisible
// observation.
func (Backend) Read(addr *int64) int64 {
	return atomic.LoadInt64(addr)
}

// Write stores v at addr as a single indivisible unit.
func (Backend) Write(addr *int64, v int64) {
	storeInt64(addr, v)
}

// CompareAndSwap compares the value at addr to old and, if equal,
// replaces it with new and returns true; otherwise memory is unchanged
// and it returns false.
//
// Strong semantics: a false return guarantees the observed value was
// not old at some instant during the call. Fully ordered with respect
// to every other atomic access on addr.
func (Backend) CompareAndSwap(addr *int64, old, new int64) bool {
	return atomic.CompareAndSwapInt64(addr, old, new)
}
