package arch

import "golang.org/x/sys/cpu"

// Features describes optional CPU capabilities of the host that affect
// how cheap the native backend's instruction sequences are. None of
// these change backend routing; they are surfaced for diagnostics
// (quasistress version, facility info).
type Features struct {
	// LSE reports ARMv8.1 large-system-extension atomics (single
	// CASAL/SWPAL instructions instead of exclusive load/store pairs).
	// Always false off arm64.
	LSE bool
}

// HostFeatures probes the running CPU once per call.
//
// golang.org/x/sys/cpu fills its feature structs during package init,
// so this is a plain field read, safe from any goroutine.
func HostFeatures() Features {
	return Features{
		LSE: cpu.ARM64.HasATOMICS,
	}
}
