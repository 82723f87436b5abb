// Package quasi provides the public API for the quasi-atomic word facility.
//
// See doc.go for detailed documentation and examples.
package quasi

import (
	"github.com/kolkov/quasiatomic/internal/quasi/arch"
	"github.com/kolkov/quasiatomic/internal/quasi/facility"
	"github.com/kolkov/quasiatomic/internal/quasi/fence"
)

// InstructionSet identifies a target architecture for the policy
// queries. See [Host] and the exported constants.
type InstructionSet = arch.InstructionSet

// Instruction set identifiers, mirroring the GOARCH values the facility
// can be compiled for.
const (
	Amd64    = arch.Amd64
	Arm64    = arch.Arm64
	X86      = arch.X86
	Arm      = arch.Arm
	Riscv64  = arch.Riscv64
	Loong64  = arch.Loong64
	Ppc64    = arch.Ppc64
	Ppc64le  = arch.Ppc64le
	S390x    = arch.S390x
	Mips     = arch.Mips
	Mipsle   = arch.Mipsle
	Mips64   = arch.Mips64
	Mips64le = arch.Mips64le
	Wasm     = arch.Wasm
)

// Host returns the instruction set the process is running on.
func Host() InstructionSet {
	return arch.Host()
}

// Startup initializes the facility. On architectures that route to the
// fallback strategy this allocates the swap mutex pool; elsewhere it is
// cheap. It must be called exactly once before any other operation.
//
// Allocation failure or a misconfigured architecture aborts the process
// with a diagnostic: the facility cannot offer its correctness
// guarantee in a degraded mode.
func Startup() {
	facility.Startup()
}

// Shutdown releases the facility's resources. Call it exactly once,
// after the last use; afterwards no operation may be issued without a
// new Startup.
func Shutdown() {
	facility.Shutdown()
}

// Read64 returns the 64-bit value at addr as a single indivisible
// observation — never a byte mix of two writes.
//
// addr must be 64-bit aligned and remain owned by the caller for the
// duration of the call.
func Read64(addr *int64) int64 {
	return facility.Read64(addr)
}

// Write64 stores v at addr as a single indivisible unit.
//
// addr must be 64-bit aligned and remain owned by the caller for the
// duration of the call.
func Write64(addr *int64, v int64) {
	facility.Write64(addr, v)
}

// Cas64 atomically compares the value at addr to old and, if equal,
// replaces it with new and returns true. Otherwise memory is left
// unchanged and Cas64 returns false.
//
// The operation is sequentially consistent with respect to every other
// quasi-atomic access on the same address, and strong: a false return
// guarantees that at some instant during the call the value was not
// old. A false result is the normal "expected value did not match"
// outcome; callers retry or take their alternate path.
func Cas64(old, new int64, addr *int64) bool {
	return facility.Cas64(old, new, addr)
}

// RequiresFallback reports whether 64-bit word operations on the given
// instruction set serialize through the swap mutex pool instead of
// native atomics. The answer is stable for the life of the process.
func RequiresFallback(isa InstructionSet) bool {
	return arch.RequiresFallback(isa)
}

// LongAtomicsUseMutexes reports whether the architecture provides
// reasonable atomic long operations or the facility falls back on
// mutexes. It is an alias of [RequiresFallback] kept for callers that
// phrase the question this way.
func LongAtomicsUseMutexes(isa InstructionSet) bool {
	return arch.RequiresFallback(isa)
}

// ThreadFenceForConstructor emits a store-store barrier: no write
// issued before the call may be reordered after it by the executing
// core.
//
// Call it after the last field-initializing write of a newly
// constructed object and before publishing a reference to the object,
// so that any thread observing the reference observes a fully
// initialized object. It is not a substitute for acquire/release
// pairing on the reads that follow.
func ThreadFenceForConstructor() {
	fence.ThreadFenceForConstructor()
}
