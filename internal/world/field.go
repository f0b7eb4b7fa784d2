package world

import (
	"planet-lod/internal/config"
	"planet-lod/internal/noise"
)

// NewField builds the noise field described by s, wrapped in a cache when
// noise_cache is set.
func NewField(s *config.Settings) (noise.Field, error) {
	f, err := noise.New(s.NoiseBackend, s.NoiseParameters())
	if err != nil {
		return nil, err
	}
	if !s.NoiseCache {
		return f, nil
	}
	if s.NoiseCacheSize > 0 {
		c, err := noise.NewBoundedCached(f, s.NoiseCacheSize)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return noise.NewCached(f), nil
}
