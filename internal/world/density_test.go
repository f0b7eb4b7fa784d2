package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"planet-lod/internal/config"
	"planet-lod/internal/meshing"
	"planet-lod/internal/noise"
)

func TestDensityContextToWorld(t *testing.T) {
	for _, res := range []int{8, 7} {
		dc := DensityContext{
			Min:        mgl64.Vec3{-16, -8, 0},
			Max:        mgl64.Vec3{-8, 0, 8},
			Resolution: res,
		}
		lo := float64(meshing.GridMin(res))
		hi := lo + float64(res)
		if got := dc.ToWorld(lo, lo, lo); !got.ApproxEqual(dc.Min) {
			t.Errorf("res %d: lowest lattice point maps to %v, want %v", res, got, dc.Min)
		}
		if got := dc.ToWorld(hi, hi, hi); !got.ApproxEqual(dc.Max) {
			t.Errorf("res %d: highest lattice point maps to %v, want %v", res, got, dc.Max)
		}
	}
}

func TestDensityContextSample(t *testing.T) {
	dc := DensityContext{
		Min:        mgl64.Vec3{-4, -4, -4},
		Max:        mgl64.Vec3{4, 4, 4},
		Resolution: 8,
		Center:     mgl64.Vec3{},
		Radius:     3,
	}
	if got := dc.Sample(0, 0, 0); got != -3 {
		t.Fatalf("Sample at center = %v, want -3", got)
	}
	if got := dc.Sample(4, 0, 0); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Sample at x=4 = %v, want 1", got)
	}
}

func TestDensityContextLayers(t *testing.T) {
	g, err := noise.NewGradient(noise.DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}
	dc := DensityContext{
		Min:        mgl64.Vec3{0, 0, 0},
		Max:        mgl64.Vec3{8, 8, 8},
		Resolution: 8,
		Radius:     5,
		Layers:     []config.NoiseLayer{{Scale: 0.1, Amplitude: 1}, {Scale: 0.5, Amplitude: 0.25}},
		Field:      g,
	}
	p := mgl64.Vec3{2.5, 1.25, 3.75}
	want := g.Value(0.25, 0.125, 0.375) + 0.25*g.Value(1.25, 0.625, 1.875)
	if got := dc.Perturbation(p); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Perturbation = %v, want %v", got, want)
	}
}

func TestDensityContextVertexToWorld(t *testing.T) {
	dc := DensityContext{Min: mgl64.Vec3{8, 8, 8}, Max: mgl64.Vec3{16, 16, 16}, Resolution: 4}
	// local -2 is the lowest lattice point, +2 the highest
	if got := dc.VertexToWorld(mgl32.Vec3{-2, 0, 2}); !got.ApproxEqual(mgl32.Vec3{8, 12, 16}) {
		t.Fatalf("VertexToWorld = %v", got)
	}
}
