// Package facility wires the architecture policy, the native backend and
// the mutex-striped fallback backend into the quasi-atomic 64-bit word
// facility.
//
// A Facility routes every Read64/Write64/Cas64 call to exactly one
// backend, chosen once at construction from the architecture policy.
// Two quasi-atomic operations on the exact same address are atomic with
// respect to each other; no guarantee is made about quasi-atomic
// operations mixed with plain accesses to the same address, nor about
// operations on partially overlapping memory.
//
// The package also maintains one default Facility behind the classic
// Startup/Shutdown surface used by the public quasi package.
package facility

import (
	"fmt"
	"os"
	"sync"

	"github.com/kolkov/quasiatomic/internal/quasi/arch"
	"github.com/kolkov/quasiatomic/internal/quasi/native"
	"github.com/kolkov/quasiatomic/internal/quasi/stripe"
)

// Backend is the common interface both word backends implement.
//
// Read and Write never fail; CompareAndSwap returning false is the
// normal "expected value did not match" outcome, not an error.
type Backend interface {
	// Read returns the 64-bit value at addr without tearing.
	Read(addr *int64) int64

	// Write stores v at addr without tearing.
	Write(addr *int64, v int64)

	// CompareAndSwap atomically replaces the value at addr with new if
	// it currently equals old, reporting whether it did. Strong
	// semantics, sequentially consistent ordering.
	CompareAndSwap(addr *int64, old, new int64) bool
}

// Config parameterizes a Facility.
type Config struct {
	// ISA selects the architecture policy. The zero value means the
	// host architecture.
	ISA arch.InstructionSet

	// ForceFallback routes all operations through the mutex-striped
	// backend regardless of native capability. Used by tests and the
	// quasistress tool to exercise the fallback path on hosts whose
	// native atomics would otherwise win.
	ForceFallback bool
}

// Facility is an explicitly constructed quasi-atomic word facility.
//
// All state is fixed at construction: the backend choice never changes,
// and the fallback pool (when present) holds a constant set of locks.
// The structure itself therefore needs no synchronization; only the
// individual stripe locks inside the pool are ever contended.
type Facility struct {
	isa      arch.InstructionSet
	fallback bool
	backend  Backend
	pool     *stripe.Pool // non-nil iff fallback
}

// New constructs a Facility for the given configuration.
//
// If the configuration selects the fallback strategy, the swap mutex
// pool is allocated here; the facility cannot offer its correctness
// guarantee without it, so there is no degraded mode.
//
// An architecture with neither a native atomic path nor fallback routing
// is a build/deployment defect, reported by aborting with a diagnostic.
func New(cfg Config) *Facility {
	isa := cfg.ISA
	if isa == arch.Unknown {
		isa = arch.Host()
	}

	fallback := cfg.ForceFallback || arch.RequiresFallback(isa)
	if !fallback && !isa.HasWideAtomics() {
		// Unreachable with the current policy table; kept as the guard
		// the contract demands for configuration mismatches.
		fatalf("architecture %s supports neither wide atomics nor fallback routing", isa)
	}

	f := &Facility{isa: isa, fallback: fallback}
	if fallback {
		f.pool = stripe.NewPool()
		f.backend = f.pool
	} else {
		f.backend = native.Backend{}
	}
	return f
}

// Shutdown releases the facility's resources. No further operations may
// be issued through it afterwards.
func (f *Facility) Shutdown() {
	if f.pool != nil {
		f.pool.Release()
		f.pool = nil
	}
	f.backend = nil
}

// Read64 returns the 64-bit value at addr without tearing. addr must be
// 64-bit aligned and owned by the caller for the duration of the call.
func (f *Facility) Read64(addr *int64) int64 {
	return f.backend.Read(addr)
}

// Write64 stores v at addr without tearing.
func (f *Facility) Write64(addr *int64, v int64) {
	f.backend.Write(addr, v)
}

// Cas64 atomically compares the value at addr to old and, if equal,
// replaces it with new and returns true; otherwise memory is left
// unchanged and it returns false.
func (f *Facility) Cas64(old, new int64, addr *int64) bool {
	return f.backend.CompareAndSwap(addr, old, new)
}

// ISA returns the instruction set the facility was configured for.
func (f *Facility) ISA() arch.InstructionSet {
	return f.isa
}

// UsesFallback reports whether operations serialize through the swap
// mutex pool. Constant for the life of the facility.
func (f *Facility) UsesFallback() bool {
	return f.fallback
}

// Pool returns the swap mutex pool, or nil when the native backend is
// active. Exposed for the stripe-mapping surface (GetStripe) and tests.
func (f *Facility) Pool() *stripe.Pool {
	return f.pool
}

// Default facility lifecycle.
//
// The public quasi package offers the classic package-level surface
// (Startup, Shutdown, Read64, ...) over this single instance. The mutex
// guards only the Startup/Shutdown transitions; the hot-path operations
// read def without locking, which is safe because callers must not
// overlap operations with lifecycle calls (using the facility outside
// the Startup/Shutdown window is undefined by contract, and diagnosed
// here when it is cheap to do so).
var (
	lifecycleMu sync.Mutex
	def         *Facility
)

// Startup initializes the default facility for the host architecture.
// It must be called exactly once before any other operation; calling it
// again without an intervening Shutdown is a caller defect and aborts.
func Startup() {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	if def != nil {
		fatalf("Startup called twice without Shutdown")
	}
	def = New(Config{})
}

// Shutdown tears the default facility down. After Shutdown no further
// operations may be issued until a new Startup.
func Shutdown() {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	if def == nil {
		fatalf("Shutdown called before Startup")
	}
	def.Shutdown()
	def = nil
}

// current returns the default facility, aborting with a diagnostic when
// the caller operates outside the Startup/Shutdown window.
func current() *Facility {
	f := def
	if f == nil {
		fatalf("operation issued outside the Startup/Shutdown window")
	}
	return f
}

// Read64 operates on the default facility.
func Read64(addr *int64) int64 {
	return current().Read64(addr)
}

// Write64 operates on the default facility.
func Write64(addr *int64, v int64) {
	current().Write64(addr, v)
}

// Cas64 operates on the default facility.
func Cas64(old, new int64, addr *int64) bool {
	return current().Cas64(old, new, addr)
}

// fatalf reports a configuration or lifecycle defect and aborts.
//
// These conditions indicate a build/deployment or caller mismatch, not
// a runtime state anyone can recover from at the call site, so they do
// not surface as errors. The panic carries the same text written to
// stderr so crash handlers see it too.
func fatalf(format string, args ...any) {
	msg := "quasiatomic: " + fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, msg)
	panic(msg)
}
