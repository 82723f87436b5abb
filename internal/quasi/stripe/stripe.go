// Package stripe implements the mutex-striped fallback backend for
// quasi-atomic 64-bit word operations.
//
// On targets without tear-free wide atomics, every 64-bit word operation
// acquires one of SwapMutexCount independent locks, chosen by a
// deterministic hash of the word's address, and performs a plain memory
// access under that lock. Two operations on the same address always hash
// to the same lock, so they serialize; operations on unrelated addresses
// usually hash to different locks and proceed in parallel.
//
// The guarantee holds only among accesses that go through this backend.
// A plain access to the same address that bypasses the pool breaks
// atomicity. That is an accepted, documented limitation of the striped
// design, inherited from the callers' contract, not a bug.
package stripe

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// SwapMutexCount is the fixed number of independent locks in a Pool.
//
// 32 stripes keeps false contention low for realistic working sets while
// the pool itself stays small enough to sit in a few cache lines.
const SwapMutexCount = 32

// livePools counts pools that have been created and not yet released.
// Tests use it to verify Startup/Shutdown leaves nothing behind.
var livePools atomic.Int32

// stripeLock is one pool entry. The pad keeps neighboring locks on
// separate cache lines so contention on one stripe does not slow down
// its neighbors through false sharing.
type stripeLock struct {
	mu sync.Mutex
	_  cpu.CacheLinePad
}

// Pool is an ordered, fixed-size collection of exactly SwapMutexCount
// independent locks, plus the address-to-stripe mapping.
//
// The set of locks is fixed between NewPool and Release: nothing is ever
// added or removed, so the pool structure itself needs no synchronization.
// Only the individual locks are contended.
type Pool struct {
	locks []stripeLock
}

// NewPool allocates a pool of SwapMutexCount unlocked stripes.
func NewPool() *Pool {
	p := &Pool{locks: make([]stripeLock, SwapMutexCount)}
	livePools.Add(1)
	return p
}

// Release tears the pool down. The pool must not be used afterwards.
func (p *Pool) Release() {
	p.locks = nil
	livePools.Add(-1)
}

// Len returns the number of stripes (always SwapMutexCount while the
// pool is live).
func (p *Pool) Len() int {
	return len(p.locks)
}

// Index returns the stripe index in [0, SwapMutexCount) for addr.
//
// The hash multiplies the address by a golden-ratio constant and keeps
// the top five bits. The multiplicative mix spreads both sequential
// addresses (array elements, struct fields) and heap-random addresses
// evenly across stripes, which a plain shift-and-modulo does poorly for
// allocator-aligned pointers.
//
// Referential stability is the correctness-critical property: the same
// address always yields the same index for the lifetime of the pool.
//
//go:nosplit
func (p *Pool) Index(addr *int64) int {
	const goldenRatio = 0x9E3779B97F4A7C15

	hash := uint64(uintptr(unsafe.Pointer(addr))) * goldenRatio
	return int(hash >> 59) // Top 5 bits: [0, 32).
}

// Stripe returns the lock that serializes operations on addr.
//
// Exposed so callers (and tests) can observe the address-to-lock
// mapping; the backend operations below acquire it internally.
func (p *Pool) Stripe(addr *int64) *sync.Mutex {
	return &p.locks[p.Index(addr)].mu
}

// Read returns the 64-bit value at addr without tearing, by holding the
// address's stripe lock across a plain load.
func (p *Pool) Read(addr *int64) int64 {
	mu := p.Stripe(addr)
	mu.Lock()
	v := *addr
	mu.Unlock()
	return v
}

// Write stores v at addr without tearing, by holding the address's
// stripe lock across a plain store.
func (p *Pool) Write(addr *int64, v int64) {
	mu := p.Stripe(addr)
	mu.Lock()
	*addr = v
	mu.Unlock()
}

// CompareAndSwap compares the value at addr to old and, if equal,
// replaces it with new and returns true. Otherwise memory is left
// unchanged and it returns false.
//
// The check and the conditional store happen under the stripe lock, so
// a false result means the value genuinely differed from old at some
// instant during the call. There are no spurious failures.
func (p *Pool) CompareAndSwap(addr *int64, old, new int64) bool {
	mu := p.Stripe(addr)
	mu.Lock()
	ok := *addr == old
	if ok {
		*addr = new
	}
	mu.Unlock()
	return ok
}

// LivePools returns the number of pools currently allocated and not
// released. Used by lifecycle tests for allocation accounting.
func LivePools() int32 {
	return livePools.Load()
}
