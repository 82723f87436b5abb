// Package arch implements the architecture policy for the quasi-atomic facility.
//
// Every 64-bit word operation routes through exactly one of two backends:
// the native backend (single-instruction-equivalent atomics) or the
// mutex-striped fallback backend. Which one applies is a pure function of
// the target instruction set, computed from a static capability table and
// stable for the life of the process.
package arch

import "runtime"

// InstructionSet identifies a target architecture.
//
// The values mirror the GOARCH identifiers the facility can be compiled
// for. Unknown is the zero value and never describes a usable target.
type InstructionSet uint8

const (
	// Unknown is the zero InstructionSet. It has no native atomic path
	// and always routes to the fallback backend.
	Unknown InstructionSet = iota

	// Amd64 is x86-64.
	Amd64

	// Arm64 is 64-bit ARM (AArch64).
	Arm64

	// X86 is 32-bit x86 (GOARCH=386). Wide loads/stores are available
	// via SSE, but there is no direct 64-bit atomic store.
	X86

	// Arm is 32-bit ARM. 64-bit stores go through an exclusive
	// load/store-conditional retry loop.
	Arm

	// Riscv64 is 64-bit RISC-V.
	Riscv64

	// Loong64 is 64-bit LoongArch.
	Loong64

	// Ppc64 is 64-bit PowerPC, big-endian.
	Ppc64

	// Ppc64le is 64-bit PowerPC, little-endian.
	Ppc64le

	// S390x is IBM z/Architecture.
	S390x

	// Mips is 32-bit MIPS, big-endian. No usable wide atomics; all
	// 64-bit word operations serialize through the swap mutex pool.
	Mips

	// Mipsle is 32-bit MIPS, little-endian. Same policy as Mips.
	Mipsle

	// Mips64 is 64-bit MIPS, big-endian.
	Mips64

	// Mips64le is 64-bit MIPS, little-endian.
	Mips64le

	// Wasm is WebAssembly. Single-threaded in Go, so plain wide
	// accesses already cannot tear.
	Wasm

	numInstructionSets
)

// capability describes what a target can do natively for 64-bit words.
//
// The table below is the single source of truth for backend routing.
// It is immutable after process start; RequiresFallback and the other
// predicates are pure reads of it.
type capability struct {
	name string

	// pointerBits is the native pointer width. On 64-bit targets a
	// plain aligned load of a 64-bit word already cannot tear.
	pointerBits int

	// wideAtomics reports whether the target offers tear-free 64-bit
	// load/store/CAS (a single wide instruction or an exclusive pair).
	wideAtomics bool

	// directStore64 reports whether a single atomic 64-bit store
	// instruction exists. When false, the native backend emulates the
	// store with a compare-and-swap retry loop.
	directStore64 bool
}

// capabilities is the static, architecture-indexed policy table.
var capabilities = [numInstructionSets]capability{
	Unknown:  {name: "unknown", pointerBits: 0, wideAtomics: false, directStore64: false},
	Amd64:    {name: "amd64", pointerBits: 64, wideAtomics: true, directStore64: true},
	Arm64:    {name: "arm64", pointerBits: 64, wideAtomics: true, directStore64: true},
	X86:      {name: "386", pointerBits: 32, wideAtomics: true, directStore64: false},
	Arm:      {name: "arm", pointerBits: 32, wideAtomics: true, directStore64: false},
	Riscv64:  {name: "riscv64", pointerBits: 64, wideAtomics: true, directStore64: true},
	Loong64:  {name: "loong64", pointerBits: 64, wideAtomics: true, directStore64: true},
	Ppc64:    {name: "ppc64", pointerBits: 64, wideAtomics: true, directStore64: true},
	Ppc64le:  {name: "ppc64le", pointerBits: 64, wideAtomics: true, directStore64: true},
	S390x:    {name: "s390x", pointerBits: 64, wideAtomics: true, directStore64: true},
	Mips:     {name: "mips", pointerBits: 32, wideAtomics: false, directStore64: false},
	Mipsle:   {name: "mipsle", pointerBits: 32, wideAtomics: false, directStore64: false},
	Mips64:   {name: "mips64", pointerBits: 64, wideAtomics: true, directStore64: true},
	Mips64le: {name: "mips64le", pointerBits: 64, wideAtomics: true, directStore64: true},
	Wasm:     {name: "wasm", pointerBits: 64, wideAtomics: true, directStore64: true},
}

// byGOARCH maps runtime.GOARCH strings to InstructionSet values.
var byGOARCH = map[string]InstructionSet{
	"amd64":    Amd64,
	"arm64":    Arm64,
	"386":      X86,
	"arm":      Arm,
	"riscv64":  Riscv64,
	"loong64":  Loong64,
	"ppc64":    Ppc64,
	"ppc64le":  Ppc64le,
	"s390x":    S390x,
	"mips":     Mips,
	"mipsle":   Mipsle,
	"mips64":   Mips64,
	"mips64le": Mips64le,
	"wasm":     Wasm,
}

// Host returns the InstructionSet the process is running on.
//
// An unrecognized GOARCH yields Unknown, which routes every operation to
// the fallback backend. That is a configuration smell, not a crash: the
// facility stays correct, only slower.
func Host() InstructionSet {
	if isa, ok := byGOARCH[runtime.GOARCH]; ok {
		return isa
	}
	return Unknown
}

// String returns the GOARCH-style name of the instruction set.
func (isa InstructionSet) String() string {
	if isa >= numInstructionSets {
		return "invalid"
	}
	return capabilities[isa].name
}

// Known reports whether the instruction set is one the policy table
// describes (everything except Unknown and out-of-range values).
func (isa InstructionSet) Known() bool {
	return isa > Unknown && isa < numInstructionSets
}

// PointerBits returns the native pointer width of the target, or 0 for
// an unknown target.
func (isa InstructionSet) PointerBits() int {
	if isa >= numInstructionSets {
		return 0
	}
	return capabilities[isa].pointerBits
}

// HasWideAtomics reports whether the target offers tear-free 64-bit
// load/store/CAS natively.
func (isa InstructionSet) HasWideAtomics() bool {
	if isa >= numInstructionSets {
		return false
	}
	return capabilities[isa].wideAtomics
}

// HasDirectStore64 reports whether a single atomic 64-bit store
// instruction exists. When false (32-bit targets), the native backend
// uses a compare-and-swap retry loop for Write64.
func (isa InstructionSet) HasDirectStore64() bool {
	if isa >= numInstructionSets {
		return false
	}
	return capabilities[isa].directStore64
}

// RequiresFallback reports whether 64-bit word operations on the given
// instruction set must serialize through the mutex-striped fallback
// backend instead of native atomics.
//
// The answer is a pure read of the static capability table: identical
// input always yields identical output within one process lifetime.
// Callers may cache the result for the life of the process.
func RequiresFallback(isa InstructionSet) bool {
	return !isa.HasWideAtomics()
}
