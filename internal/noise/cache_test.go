package noise

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

type countingField struct {
	calls atomic.Int64
}

func (c *countingField) Value(x, y, z float64) float64 {
	c.calls.Add(1)
	return x*100 + y*10 + z
}

func TestCachedReturnsStoredValue(t *testing.T) {
	inner := &countingField{}
	c := NewCached(inner)

	first := c.Value(1.5, 2.5, 3.5)
	second := c.Value(1.5, 2.5, 3.5)
	if first != second {
		t.Fatalf("cached value changed: %v != %v", first, second)
	}
	if n := inner.calls.Load(); n != 1 {
		t.Fatalf("inner field evaluated %d times, want 1", n)
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Fatalf("Stats = (%d, %d), want (1, 1)", hits, misses)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}

func TestCachedMatchesWrappedGradient(t *testing.T) {
	g := mustGradient(t, seeded(42))
	c := NewCached(g)
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		if got, want := c.Value(x, -x, 2*x), g.Value(x, -x, 2*x); got != want {
			t.Fatalf("Cached.Value(%v) = %v, want %v", x, got, want)
		}
		// second lookup comes from the cache
		if got, want := c.Value(x, -x, 2*x), g.Value(x, -x, 2*x); got != want {
			t.Fatalf("cached repeat at %v = %v, want %v", x, got, want)
		}
	}
	if c.Unwrap() != Field(g) {
		t.Fatalf("Unwrap did not return the wrapped field")
	}
}

func TestBoundedCachedEvicts(t *testing.T) {
	inner := &countingField{}
	c, err := NewBoundedCached(inner, 2)
	if err != nil {
		t.Fatalf("NewBoundedCached: %v", err)
	}
	c.Value(0, 0, 1)
	c.Value(0, 0, 2)
	c.Value(0, 0, 3) // evicts (0,0,1)
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	c.Value(0, 0, 3)
	if n := inner.calls.Load(); n != 3 {
		t.Fatalf("inner calls = %d, want 3", n)
	}
	c.Value(0, 0, 1)
	if n := inner.calls.Load(); n != 4 {
		t.Fatalf("evicted coordinate was not recomputed: inner calls = %d", n)
	}
}

func TestBoundedCachedRejectsSize(t *testing.T) {
	if _, err := NewBoundedCached(&countingField{}, 0); !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("size 0 error = %v, want ErrInvalidParameters", err)
	}
}

func TestCachedConcurrentAccess(t *testing.T) {
	g := mustGradient(t, seeded(8))
	c := NewCached(g)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				x := float64(i % 50)
				if c.Value(x, 1, 2) != g.Value(x, 1, 2) {
					t.Errorf("concurrent cached value mismatch at x=%v", x)
					return
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() != 50 {
		t.Fatalf("Len = %d, want 50", c.Len())
	}
}
