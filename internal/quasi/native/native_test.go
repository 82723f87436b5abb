package native

import (
	"sync"
	"testing"
)

// ========================================
// Basic Operation Tests
// ========================================

// TestBackend_ReadWrite verifies a written value is read back intact.
func TestBackend_ReadWrite(t *testing.T) {
	var b Backend
	var word int64

	b.Write(&word, 0x1122334455667788)

	if got := b.Read(&word); got != 0x1122334455667788 {
		t.Errorf("Read() = %#x, want %#x", got, int64(0x1122334455667788))
	}
}

// TestBackend_CompareAndSwap verifies strong CAS semantics.
func TestBackend_CompareAndSwap(t *testing.T) {
	var b Backend
	word := int64(100)

	if !b.CompareAndSwap(&word, 100, 200) {
		t.Error("CompareAndSwap(100, 200) = false, want true")
	}
	if word != 200 {
		t.Errorf("word = %d after successful CAS, want 200", word)
	}

	if b.CompareAndSwap(&word, 100, 300) {
		t.Error("CompareAndSwap(100, 300) = true after value changed, want false")
	}
	if word != 200 {
		t.Errorf("word = %d after failed CAS, want 200 (unchanged)", word)
	}
}

// TestBackend_NegativeValues verifies the full int64 range round-trips.
func TestBackend_NegativeValues(t *testing.T) {
	var b Backend
	var word int64

	values := []int64{0, -1, 1<<63 - 1, -1 << 63, 0x7F00FF00FF00FF00}
	for _, v := range values {
		b.Write(&word, v)
		if got := b.Read(&word); got != v {
			t.Errorf("Read() = %d, want %d", got, v)
		}
	}
}

// ========================================
// Concurrency Tests
// ========================================

// TestBackend_ConcurrentWrites verifies concurrent writers never produce
// a torn value. All writers store values with matching 32-bit halves.
func TestBackend_ConcurrentWrites(t *testing.T) {
	var b Backend
	var word int64

	const (
		workers = 16
		iters   = 2000
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				half := uint64(uint32(id*iters + i))
				b.Write(&word, int64(half<<32|half))
				got := uint64(b.Read(&word))
				if uint32(got>>32) != uint32(got) {
					t.Errorf("torn read: %#x", got)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	final := uint64(b.Read(&word))
	if uint32(final>>32) != uint32(final) {
		t.Errorf("corrupted final value: %#x", final)
	}
}

// TestBackend_ConcurrentCAS verifies CAS-based increments lose no updates.
func TestBackend_ConcurrentCAS(t *testing.T) {
	var b Backend
	var counter int64

	const (
		workers = 8
		incs    = 2000
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < incs; i++ {
				for {
					old := b.Read(&counter)
					if b.CompareAndSwap(&counter, old, old+1) {
						break
					}
				}
			}
		}()
	}
	wg.Wait()

	if counter != workers*incs {
		t.Errorf("counter = %d, want %d", counter, workers*incs)
	}
}

// ========================================
// Benchmarks
// ========================================

func BenchmarkBackend_Read(b *testing.B) {
	var nb Backend
	var word int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nb.Read(&word)
	}
}

func BenchmarkBackend_Write(b *testing.B) {
	var nb Backend
	var word int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nb.Write(&word, int64(i))
	}
}

func BenchmarkBackend_CompareAndSwap(b *testing.B) {
	var nb Backend
	var word int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nb.CompareAndSwap(&word, int64(i), int64(i+1))
	}
}
