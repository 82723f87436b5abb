package arch

import (
	"runtime"
	"testing"
)

// ========================================
// Policy Table Tests
// ========================================

// TestRequiresFallback_Table verifies backend routing per instruction set.
func TestRequiresFallback_Table(t *testing.T) {
	tests := []struct {
		isa      InstructionSet
		fallback bool
	}{
		{Amd64, false},
		{Arm64, false},
		{X86, false},
		{Arm, false},
		{Riscv64, false},
		{Loong64, false},
		{Ppc64, false},
		{Ppc64le, false},
		{S390x, false},
		{Mips, true},
		{Mipsle, true},
		{Mips64, false},
		{Mips64le, false},
		{Wasm, false},
		{Unknown, true},
	}

	for _, tt := range tests {
		if got := RequiresFallback(tt.isa); got != tt.fallback {
			t.Errorf("RequiresFallback(%s) = %v, want %v", tt.isa, got, tt.fallback)
		}
	}
}

// TestRequiresFallback_Stable verifies the policy never changes within a run.
func TestRequiresFallback_Stable(t *testing.T) {
	for _, isa := range []InstructionSet{Amd64, Arm, Mips, Unknown} {
		first := RequiresFallback(isa)
		for i := 0; i < 1000; i++ {
			if got := RequiresFallback(isa); got != first {
				t.Fatalf("RequiresFallback(%s) changed from %v to %v on call %d",
					isa, first, got, i)
			}
		}
	}

	t.Logf("RequiresFallback stable over 1000 calls per instruction set")
}

// TestCapabilities_Consistent verifies internal table invariants.
func TestCapabilities_Consistent(t *testing.T) {
	for isa := Unknown + 1; isa < numInstructionSets; isa++ {
		c := capabilities[isa]

		if c.name == "" {
			t.Errorf("instruction set %d has no name", isa)
		}

		// A direct wide store implies wide atomics in general.
		if c.directStore64 && !c.wideAtomics {
			t.Errorf("%s: directStore64 without wideAtomics", c.name)
		}

		// 64-bit pointer width implies a plain load cannot tear, so
		// wide atomics must be available.
		if c.pointerBits == 64 && !c.wideAtomics {
			t.Errorf("%s: 64-bit pointers but no wide atomics", c.name)
		}
	}
}

// ========================================
// Host Detection Tests
// ========================================

// TestHost_Known verifies the build host maps to a known instruction set.
func TestHost_Known(t *testing.T) {
	isa := Host()

	if !isa.Known() {
		t.Fatalf("Host() = Unknown for GOARCH=%s", runtime.GOARCH)
	}

	if isa.String() != runtime.GOARCH {
		t.Errorf("Host().String() = %q, want %q", isa.String(), runtime.GOARCH)
	}

	t.Logf("Host: %s (ptr=%d, wide=%v, directStore=%v, fallback=%v)",
		isa, isa.PointerBits(), isa.HasWideAtomics(), isa.HasDirectStore64(),
		RequiresFallback(isa))
}

// TestInstructionSet_OutOfRange verifies predicates degrade safely.
func TestInstructionSet_OutOfRange(t *testing.T) {
	bogus := InstructionSet(200)

	if bogus.Known() {
		t.Error("out-of-range InstructionSet reported Known")
	}
	if bogus.String() != "invalid" {
		t.Errorf("String() = %q, want %q", bogus.String(), "invalid")
	}
	if !RequiresFallback(bogus) {
		t.Error("out-of-range InstructionSet must route to fallback")
	}
	if bogus.PointerBits() != 0 {
		t.Errorf("PointerBits() = %d, want 0", bogus.PointerBits())
	}
}

// TestHostFeatures_Stable verifies feature probing is stable per run.
func TestHostFeatures_Stable(t *testing.T) {
	first := HostFeatures()
	for i := 0; i < 100; i++ {
		if got := HostFeatures(); got != first {
			t.Fatalf("HostFeatures() changed from %+v to %+v", first, got)
		}
	}

	t.Logf("HostFeatures: %+v", first)
}
