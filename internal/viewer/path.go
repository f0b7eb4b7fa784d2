// Package viewer produces the viewer position fed to the chunk manager
// every tick. Paths are pure functions of the tick number.
package viewer

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownPath is returned by Parse for an unrecognized path name.
var ErrUnknownPath = errors.New("viewer: unknown path")

// Path names accepted by Parse.
const (
	PathStatic   = "static"
	PathOrbit    = "orbit"
	PathApproach = "approach"
)

// Path yields the viewer position for a tick.
type Path interface {
	Position(tick uint64) mgl32.Vec3
}

// Static never moves.
type Static struct {
	At mgl32.Vec3
}

func (s Static) Position(uint64) mgl32.Vec3 { return s.At }

// Orbit circles Center in the XZ plane at Height above it, completing one
// revolution every Period ticks.
type Orbit struct {
	Center mgl32.Vec3
	Radius float32
	Height float32
	Period uint64
}

func (o Orbit) Position(tick uint64) mgl32.Vec3 {
	period := max(o.Period, 1)
	angle := 2 * math.Pi * float64(tick%period) / float64(period)
	s, c := math.Sincos(angle)
	return o.Center.Add(mgl32.Vec3{
		o.Radius * float32(c),
		o.Height,
		o.Radius * float32(s),
	})
}

// Approach moves linearly from From to To over Ticks ticks and then stays
// at To.
type Approach struct {
	From  mgl32.Vec3
	To    mgl32.Vec3
	Ticks uint64
}

func (a Approach) Position(tick uint64) mgl32.Vec3 {
	if a.Ticks == 0 || tick >= a.Ticks {
		return a.To
	}
	t := float32(tick) / float32(a.Ticks)
	return a.From.Add(a.To.Sub(a.From).Mul(t))
}

// Parse builds a named path framed around a planet of the given center and
// radius. static sits three radii out on +Z, orbit circles at one and a
// half radii, approach descends from three radii to the surface.
func Parse(name string, center mgl32.Vec3, radius float32) (Path, error) {
	switch name {
	case PathStatic, "":
		return Static{At: center.Add(mgl32.Vec3{0, 0, 3 * radius})}, nil
	case PathOrbit:
		return Orbit{Center: center, Radius: 1.5 * radius, Height: 0.25 * radius, Period: 240}, nil
	case PathApproach:
		return Approach{
			From:  center.Add(mgl32.Vec3{0, 0, 3 * radius}),
			To:    center.Add(mgl32.Vec3{0, 0, radius}),
			Ticks: 300,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, name)
}
