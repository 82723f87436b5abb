//go:build !386 && !arm && !mips && !mipsle

package native

import "sync/atomic"

// storeInt64 uses the target's direct atomic 64-bit store instruction.
func storeInt64(addr *int64, v int64) {
	atomic.StoreInt64(addr, v)
}
