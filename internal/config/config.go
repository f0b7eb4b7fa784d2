// Package config holds the planet generator settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"planet-lod/internal/noise"
)

// ErrInvalidConfiguration is wrapped by every validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// NoiseLayer is one term of the radius perturbation: amplitude times the
// noise field sampled at world * scale.
type NoiseLayer struct {
	Scale     float64 `json:"scale"`
	Amplitude float64 `json:"amplitude"`
}

// Settings holds every knob of a planet. All values are fixed once a chunk
// manager is built from them.
type Settings struct {
	// Noise
	Seed           int64   `json:"seed"`
	OctaveCount    int     `json:"octave_count"`
	Frequency      float64 `json:"frequency"`
	Persistence    float64 `json:"persistence"`
	Lacunarity     float64 `json:"lacunarity"`
	NoiseBackend   string  `json:"noise_backend"`    // "gradient", "opensimplex" or "perlin"
	NoiseCache     bool    `json:"noise_cache"`      // memoize noise lookups
	NoiseCacheSize int     `json:"noise_cache_size"` // 0 = unbounded

	// Surface
	TargetRadius float64      `json:"target_radius"`
	TargetCenter [3]float64   `json:"target_center"`
	NoiseLayers  []NoiseLayer `json:"noise_layers"`
	Margin       float64      `json:"margin"`

	// Chunking
	ChunksPerAxis     int       `json:"chunks_per_axis"`
	LODDistances      []float64 `json:"lod_distances"`
	LODResolutions    []int     `json:"lod_resolutions"`
	MaxUpdatesPerTick int       `json:"max_updates_per_tick"`
	PrioritizeNearest bool      `json:"prioritize_nearest"`
	InitWorkers       int       `json:"init_workers"`

	// Host
	TickBudgetMS float64 `json:"tick_budget_ms"`
	FPSLimit     int     `json:"fps_limit"` // 0 = unlimited
}

// Default returns the reference planet.
func Default() *Settings {
	p := noise.DefaultParameters()
	return &Settings{
		Seed:         p.Seed,
		OctaveCount:  p.OctaveCount,
		Frequency:    p.Frequency,
		Persistence:  p.Persistence,
		Lacunarity:   p.Lacunarity,
		NoiseBackend: noise.BackendGradient,

		TargetRadius: 16,
		NoiseLayers:  []NoiseLayer{{Scale: 0.1, Amplitude: 1}},
		Margin:       5,

		ChunksPerAxis:     4,
		LODDistances:      []float64{5, 10, 15, 20},
		LODResolutions:    []int{64, 32, 16, 8},
		MaxUpdatesPerTick: 2,
		InitWorkers:       1,

		TickBudgetMS: 20,
	}
}

// Load reads a JSON file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	s := Default()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Merge applies file-loaded values into dst, except for the settings whose
// command-line flag was explicitly provided. explicitFlags contains those
// flag names.
func Merge(dst *Settings, fromFile *Settings, explicitFlags map[string]bool) {
	merged := *fromFile
	merged.NoiseLayers = slices.Clone(fromFile.NoiseLayers)
	merged.LODDistances = slices.Clone(fromFile.LODDistances)
	merged.LODResolutions = slices.Clone(fromFile.LODResolutions)

	if explicitFlags["seed"] {
		merged.Seed = dst.Seed
	}
	if explicitFlags["workers"] {
		merged.InitWorkers = dst.InitWorkers
	}
	if explicitFlags["backend"] {
		merged.NoiseBackend = dst.NoiseBackend
	}
	if explicitFlags["max-updates"] {
		merged.MaxUpdatesPerTick = dst.MaxUpdatesPerTick
	}
	if explicitFlags["nearest"] {
		merged.PrioritizeNearest = dst.PrioritizeNearest
	}
	*dst = merged
}

// NoiseParameters returns the fractal parameters for the noise field.
func (s *Settings) NoiseParameters() noise.Parameters {
	return noise.Parameters{
		Seed:        s.Seed,
		OctaveCount: s.OctaveCount,
		Frequency:   s.Frequency,
		Persistence: s.Persistence,
		Lacunarity:  s.Lacunarity,
	}
}

// Center returns TargetCenter as a vector.
func (s *Settings) Center() mgl32.Vec3 {
	return mgl32.Vec3{float32(s.TargetCenter[0]), float32(s.TargetCenter[1]), float32(s.TargetCenter[2])}
}

// ChunkSize returns the edge length of one chunk.
func (s *Settings) ChunkSize() float64 {
	return s.TargetRadius * 2 / float64(s.ChunksPerAxis)
}

// Validate reports the first invalid setting.
func (s *Settings) Validate() error {
	if s.ChunksPerAxis <= 0 {
		return invalid("chunks_per_axis %d must be > 0", s.ChunksPerAxis)
	}
	if !(s.TargetRadius > 0) {
		return invalid("target_radius %v must be > 0", s.TargetRadius)
	}
	if s.Margin < 0 {
		return invalid("margin %v must be >= 0", s.Margin)
	}
	if len(s.LODResolutions) == 0 {
		return invalid("lod_resolutions is empty")
	}
	if len(s.LODDistances) != len(s.LODResolutions) {
		return invalid("lod_distances has %d entries, lod_resolutions has %d",
			len(s.LODDistances), len(s.LODResolutions))
	}
	for i, d := range s.LODDistances {
		if i > 0 && !(d > s.LODDistances[i-1]) {
			return invalid("lod_distances must be ascending, got %v after %v", d, s.LODDistances[i-1])
		}
	}
	for i, r := range s.LODResolutions {
		if r <= 0 {
			return invalid("lod_resolutions[%d] = %d must be > 0", i, r)
		}
	}
	if s.MaxUpdatesPerTick <= 0 {
		return invalid("max_updates_per_tick %d must be > 0", s.MaxUpdatesPerTick)
	}
	if s.InitWorkers < 1 {
		return invalid("init_workers %d must be >= 1", s.InitWorkers)
	}
	if s.NoiseCacheSize < 0 {
		return invalid("noise_cache_size %d must be >= 0", s.NoiseCacheSize)
	}
	if s.NoiseBackend != "" && !slices.Contains(noise.Backends(), s.NoiseBackend) {
		return invalid("noise_backend %q is not one of %v", s.NoiseBackend, noise.Backends())
	}
	if s.TickBudgetMS < 0 {
		return invalid("tick_budget_ms %v must be >= 0", s.TickBudgetMS)
	}
	if s.FPSLimit < 0 {
		return invalid("fps_limit %d must be >= 0", s.FPSLimit)
	}
	if err := s.NoiseParameters().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
}
