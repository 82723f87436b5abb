// Package quasi provides tear-free ("quasi-atomic") access to 64-bit
// memory words, plus the constructor publication fence, for runtimes
// that need cross-thread-visible 64-bit values without a full mutex per
// access.
//
// On architectures whose instruction set guarantees single-instruction
// 64-bit loads, stores and compare-and-swap, every operation maps to a
// native atomic. On architectures without that guarantee the facility
// falls back to a pool of 32 address-striped mutexes: operations on the
// same address always serialize through the same lock, so no observer
// ever sees a value assembled from bytes of two different writes.
//
// # Quick Start
//
//	package main
//
//	import "github.com/kolkov/quasiatomic/quasi"
//
//	var counter int64
//
//	func main() {
//		quasi.Startup()
//		defer quasi.Shutdown()
//
//		quasi.Write64(&counter, 42)
//		for !quasi.Cas64(42, 43, &counter) {
//		}
//		_ = quasi.Read64(&counter)
//	}
//
// # Guarantees and Limits
//
// Two quasi-atomic operations on the exact same address are atomic and
// sequentially consistent with respect to each other. No guarantee is
// made about quasi-atomic operations mixed with plain accesses to the
// same address, nor about operations on partially overlapping memory.
// Addresses must be 64-bit aligned; the caller owns the memory for the
// duration of every call.
//
// # API Overview
//
//   - Lifecycle: [Startup], [Shutdown]
//   - Word operations: [Read64], [Write64], [Cas64]
//   - Architecture policy: [RequiresFallback], [LongAtomicsUseMutexes], [Host]
//   - Safe publication: [ThreadFenceForConstructor]
//   - Version information: [GetInfo], [Version]
package quasi
