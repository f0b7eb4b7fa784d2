package noise

import "github.com/ojrac/opensimplex-go"

// Simplex is OpenSimplex noise summed with the same octave schedule as
// Gradient.
type Simplex struct {
	params Parameters
	noise  opensimplex.Noise
}

// NewSimplex builds an OpenSimplex field seeded with p.Seed.
func NewSimplex(p Parameters) (*Simplex, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Simplex{params: p, noise: opensimplex.New(p.Seed)}, nil
}

// Value returns the fractal sum at (x, y, z).
func (s *Simplex) Value(x, y, z float64) float64 {
	return fractal(s.params, s, x, y, z)
}

func (s *Simplex) sample(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)
}
