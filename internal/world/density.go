package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"planet-lod/internal/config"
	"planet-lod/internal/meshing"
	"planet-lod/internal/noise"
)

// DensityContext is everything needed to evaluate the planet density inside
// one chunk at one resolution. It is a plain value; nothing is shared with
// the chunk record it was built from except the noise field handle.
type DensityContext struct {
	Min        mgl64.Vec3
	Max        mgl64.Vec3
	Resolution int

	Center mgl64.Vec3
	Radius float64
	Layers []config.NoiseLayer
	Field  noise.Field
}

// ToWorld maps extractor-local coordinates to world space. The lowest
// lattice point maps to Min and the highest to Max.
func (c DensityContext) ToWorld(x, y, z float64) mgl64.Vec3 {
	off := float64(meshing.GridMin(c.Resolution))
	res := float64(c.Resolution)
	size := c.Max.Sub(c.Min)
	return mgl64.Vec3{
		c.Min[0] + (x-off)/res*size[0],
		c.Min[1] + (y-off)/res*size[1],
		c.Min[2] + (z-off)/res*size[2],
	}
}

// Perturbation returns the radius offset at a world position.
func (c DensityContext) Perturbation(p mgl64.Vec3) float64 {
	if c.Field == nil {
		return 0
	}
	var sum float64
	for _, l := range c.Layers {
		q := p.Mul(l.Scale)
		sum += l.Amplitude * c.Field.Value(q[0], q[1], q[2])
	}
	return sum
}

// Sample is the density at extractor-local coordinates: negative inside
// the perturbed sphere, positive outside.
func (c DensityContext) Sample(x, y, z float64) float64 {
	p := c.ToWorld(x, y, z)
	return p.Sub(c.Center).Len() - (c.Radius + c.Perturbation(p))
}

// VertexToWorld maps an extracted vertex to world space.
func (c DensityContext) VertexToWorld(v mgl32.Vec3) mgl32.Vec3 {
	p := c.ToWorld(float64(v[0]), float64(v[1]), float64(v[2]))
	return mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
}
