//go:build 386 || arm || mips || mipsle

package native

import (
	"runtime"
	"sync/atomic"
)

// storeSpinBudget bounds how long a failing store spins before yielding
// the processor. The loop itself has no upper bound on retries; the
// budget only keeps a heavily contended word from monopolizing a P.
const storeSpinBudget = 64

// storeInt64 emulates an atomic 64-bit store on targets without a
// direct wide store instruction, the same way an exclusive
// load/store-conditional pair does it in hardware: re-read, attempt a
// conditional write, repeat until the conditional write succeeds.
//
// Each iteration is lock-free; progress depends only on the hardware's
// forward-progress guarantee for compare-and-swap.
func storeInt64(addr *int64, v int64) {
	spins := 0
	for {
		old := atomic.LoadInt64(addr)
		if atomic.CompareAndSwapInt64(addr, old, v) {
			return
		}
		spins++
		if spins >= storeSpinBudget {
			runtime.Gosched()
			spins = 0
		}
	}
}
