package viewer

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStatic(t *testing.T) {
	s := Static{At: mgl32.Vec3{1, 2, 3}}
	if s.Position(0) != s.Position(1000) {
		t.Fatalf("static path moved")
	}
}

func TestOrbit(t *testing.T) {
	o := Orbit{Center: mgl32.Vec3{1, 0, 0}, Radius: 10, Height: 2, Period: 100}
	if got := o.Position(0); !got.ApproxEqualThreshold(mgl32.Vec3{11, 2, 0}, 1e-4) {
		t.Fatalf("Position(0) = %v", got)
	}
	if got := o.Position(25); !got.ApproxEqualThreshold(mgl32.Vec3{1, 2, 10}, 1e-4) {
		t.Fatalf("Position(25) = %v", got)
	}
	if o.Position(7) != o.Position(107) {
		t.Fatalf("orbit is not periodic")
	}
	for tick := uint64(0); tick < 100; tick += 7 {
		p := o.Position(tick).Sub(o.Center)
		if d := (mgl32.Vec2{p[0], p[2]}).Len(); mgl32.Abs(d-10) > 1e-3 {
			t.Fatalf("tick %d: horizontal distance %v, want 10", tick, d)
		}
	}
}

func TestApproach(t *testing.T) {
	a := Approach{From: mgl32.Vec3{0, 0, 30}, To: mgl32.Vec3{0, 0, 10}, Ticks: 4}
	want := []float32{30, 25, 20, 15, 10, 10}
	for tick, z := range want {
		if got := a.Position(uint64(tick)); !got.ApproxEqual(mgl32.Vec3{0, 0, z}) {
			t.Fatalf("Position(%d) = %v, want z=%v", tick, got, z)
		}
	}
	if got := (Approach{To: mgl32.Vec3{1, 1, 1}}).Position(0); got != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("zero-length approach = %v", got)
	}
}

func TestParse(t *testing.T) {
	center := mgl32.Vec3{0, 0, 0}
	for _, name := range []string{"", PathStatic, PathOrbit, PathApproach} {
		p, err := Parse(name, center, 16)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if d := p.Position(0).Len(); d < 16 {
			t.Errorf("Parse(%q) starts inside the planet at distance %v", name, d)
		}
	}
	if _, err := Parse("spiral", center, 16); !errors.Is(err, ErrUnknownPath) {
		t.Fatalf("Parse(spiral) = %v, want ErrUnknownPath", err)
	}
}
