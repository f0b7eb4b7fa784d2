package noise

import (
	"errors"
	"testing"
)

func TestBackendsDeterministic(t *testing.T) {
	for _, name := range Backends() {
		t.Run(name, func(t *testing.T) {
			a, err := New(name, seeded(42))
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			b, err := New(name, seeded(42))
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			for i := 0; i < 100; i++ {
				x, y, z := float64(i)*0.13, float64(i)*-0.29, float64(i)*0.41
				if va, vb := a.Value(x, y, z), b.Value(x, y, z); va != vb {
					t.Fatalf("%s not deterministic at (%v, %v, %v): %v != %v", name, x, y, z, va, vb)
				}
			}
		})
	}
}

func TestBackendsVaryInSpace(t *testing.T) {
	for _, name := range Backends() {
		f, err := New(name, seeded(42))
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		distinct := map[float64]struct{}{}
		for i := 0; i < 64; i++ {
			distinct[f.Value(float64(i)*0.173+0.05, 0.31, -0.77)] = struct{}{}
		}
		if len(distinct) < 8 {
			t.Fatalf("%s produced only %d distinct values over 64 samples", name, len(distinct))
		}
	}
}

func TestNewDefaultsToGradient(t *testing.T) {
	f, err := New("", seeded(1))
	if err != nil {
		t.Fatalf("New(\"\"): %v", err)
	}
	if _, ok := f.(*Gradient); !ok {
		t.Fatalf("New(\"\") = %T, want *Gradient", f)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New("voronoi", seeded(1)); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("unknown backend error = %v", err)
	}
	bad := seeded(1)
	bad.OctaveCount = 0
	for _, name := range Backends() {
		f, err := New(name, bad)
		if !errors.Is(err, ErrInvalidParameters) {
			t.Fatalf("New(%q) with 0 octaves error = %v", name, err)
		}
		if f != nil {
			t.Fatalf("New(%q) returned non-nil field %T with an error", name, f)
		}
	}
}
