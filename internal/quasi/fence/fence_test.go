package fence

import (
	"sync/atomic"
	"testing"
)

// payload is a multi-field object whose fields must all be visible once
// a pointer to it is published.
type payload struct {
	a, b, c, d int64
}

// TestThreadFenceForConstructor_Publication stress-tests the safe
// publication pattern: construct, fence, publish. A reader that observes
// the published pointer must observe every field write that preceded the
// fence.
func TestThreadFenceForConstructor_Publication(t *testing.T) {
	const trials = 20000

	var slot atomic.Pointer[payload]

	done := make(chan struct{})
	go func() {
		defer close(done)
		seen := 0
		for seen < trials {
			p := slot.Load()
			if p == nil {
				continue
			}
			if p.a != p.b || p.b != p.c || p.c != p.d {
				t.Errorf("partially constructed object observed: %+v", *p)
				return
			}
			// Publications may be overwritten before we see them;
			// advance past whatever we did observe.
			if v := int(p.a); v > seen {
				seen = v
			}
		}
	}()

	for i := 1; i <= trials; i++ {
		p := &payload{}
		p.a = int64(i)
		p.b = int64(i)
		p.c = int64(i)
		p.d = int64(i)
		ThreadFenceForConstructor()
		slot.Store(p)
	}

	<-done
}

// TestThreadFenceForConstructor_Reentrant verifies the fence is safe to
// call from many goroutines at once.
func TestThreadFenceForConstructor_Reentrant(t *testing.T) {
	const workers = 32

	start := make(chan struct{})
	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		go func() {
			<-start
			for i := 0; i < 1000; i++ {
				ThreadFenceForConstructor()
			}
			done <- struct{}{}
		}()
	}
	close(start)
	for w := 0; w < workers; w++ {
		<-done
	}
}

func BenchmarkThreadFenceForConstructor(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ThreadFenceForConstructor()
	}
}
