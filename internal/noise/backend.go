package noise

import (
	"errors"
	"fmt"
)

// Backend names accepted by New.
const (
	BackendGradient    = "gradient"
	BackendOpenSimplex = "opensimplex"
	BackendPerlin      = "perlin"
)

// ErrUnknownBackend is returned by New for an unrecognized backend name.
var ErrUnknownBackend = errors.New("noise: unknown backend")

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendGradient, BackendOpenSimplex, BackendPerlin}
}

// New builds the named field. An empty name selects BackendGradient.
func New(backend string, p Parameters) (Field, error) {
	var (
		f   Field
		err error
	)
	switch backend {
	case "", BackendGradient:
		f, err = NewGradient(p)
	case BackendOpenSimplex:
		f, err = NewSimplex(p)
	case BackendPerlin:
		f, err = NewPerlin(p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
