// Package noise provides seeded, octave-summed 3D noise fields.
package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned when a field is built from parameters
// that would produce meaningless output.
var ErrInvalidParameters = errors.New("noise: invalid parameters")

// Field is anything that yields a scalar for a 3D coordinate.
type Field interface {
	Value(x, y, z float64) float64
}

// Parameters configure the fractal summation shared by every field in this
// package.
type Parameters struct {
	Seed        int64
	OctaveCount int
	Frequency   float64
	Persistence float64
	Lacunarity  float64
}

// DefaultParameters returns the values used by the planet generator.
func DefaultParameters() Parameters {
	return Parameters{
		Seed:        1234,
		OctaveCount: 1,
		Frequency:   3,
		Persistence: 0.2,
		Lacunarity:  2,
	}
}

// Validate reports the first parameter outside its allowed range.
func (p Parameters) Validate() error {
	switch {
	case p.OctaveCount < 1:
		return fmt.Errorf("%w: octave count %d < 1", ErrInvalidParameters, p.OctaveCount)
	case !(p.Frequency > 0):
		return fmt.Errorf("%w: frequency %v must be > 0", ErrInvalidParameters, p.Frequency)
	case !(p.Persistence > 0 && p.Persistence <= 1):
		return fmt.Errorf("%w: persistence %v must be in (0,1]", ErrInvalidParameters, p.Persistence)
	case !(p.Lacunarity > 1):
		return fmt.Errorf("%w: lacunarity %v must be > 1", ErrInvalidParameters, p.Lacunarity)
	}
	return nil
}

// sampler is a single-octave noise source.
type sampler interface {
	sample(x, y, z float64) float64
}

// fractal sums OctaveCount octaves of s. The first octave already carries
// amplitude Persistence. The result is not clamped.
func fractal(p Parameters, s sampler, x, y, z float64) float64 {
	total := 0.0
	freq := p.Frequency
	amp := p.Persistence
	for i := 0; i < p.OctaveCount; i++ {
		total += s.sample(x*freq, y*freq, z*freq) * amp
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	return total
}
