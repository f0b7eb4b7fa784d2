package noise

import "github.com/aquilax/go-perlin"

// Perlin is the go-perlin implementation driven one octave at a time, so
// octave weighting follows Parameters rather than the library's own
// alpha/beta schedule.
type Perlin struct {
	params Parameters
	noise  *perlin.Perlin
}

// NewPerlin builds a go-perlin field seeded with p.Seed.
func NewPerlin(p Parameters) (*Perlin, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// n=1 makes Noise3D a single raw octave; alpha and beta are then unused.
	return &Perlin{params: p, noise: perlin.NewPerlin(2, 2, 1, p.Seed)}, nil
}

// Value returns the fractal sum at (x, y, z).
func (n *Perlin) Value(x, y, z float64) float64 {
	return fractal(n.params, n, x, y, z)
}

func (n *Perlin) sample(x, y, z float64) float64 {
	return n.noise.Noise3D(x, y, z)
}
