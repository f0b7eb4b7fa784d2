package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"planet-lod/internal/noise"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if s.Seed != 1234 || s.TargetRadius != 16 || s.ChunksPerAxis != 4 || s.MaxUpdatesPerTick != 2 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if got := s.ChunkSize(); got != 8 {
		t.Fatalf("ChunkSize() = %v, want 8", got)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero chunks", func(s *Settings) { s.ChunksPerAxis = 0 }},
		{"negative radius", func(s *Settings) { s.TargetRadius = -1 }},
		{"negative margin", func(s *Settings) { s.Margin = -0.5 }},
		{"empty lods", func(s *Settings) { s.LODDistances, s.LODResolutions = nil, nil }},
		{"mismatched lods", func(s *Settings) { s.LODDistances = s.LODDistances[:2] }},
		{"descending distances", func(s *Settings) { s.LODDistances = []float64{5, 4, 15, 20} }},
		{"zero resolution", func(s *Settings) { s.LODResolutions[1] = 0 }},
		{"zero updates", func(s *Settings) { s.MaxUpdatesPerTick = 0 }},
		{"zero workers", func(s *Settings) { s.InitWorkers = 0 }},
		{"negative cache", func(s *Settings) { s.NoiseCacheSize = -1 }},
		{"unknown backend", func(s *Settings) { s.NoiseBackend = "worley" }},
		{"zero octaves", func(s *Settings) { s.OctaveCount = 0 }},
		{"zero frequency", func(s *Settings) { s.Frequency = 0 }},
		{"persistence above one", func(s *Settings) { s.Persistence = 1.5 }},
		{"lacunarity one", func(s *Settings) { s.Lacunarity = 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestValidateWrapsNoiseError(t *testing.T) {
	s := Default()
	s.OctaveCount = 0
	if err := s.Validate(); !errors.Is(err, noise.ErrInvalidParameters) {
		t.Fatalf("Validate() = %v, want it to wrap noise.ErrInvalidParameters", err)
	}
}

func TestLoadOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planet.json")
	body := `{"seed": 7, "chunks_per_axis": 2, "noise_backend": "perlin", "target_center": [1, 2, 3]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Seed != 7 || s.ChunksPerAxis != 2 || s.NoiseBackend != noise.BackendPerlin {
		t.Fatalf("file values not applied: %+v", s)
	}
	if s.TargetRadius != 16 || len(s.LODResolutions) != 4 {
		t.Fatalf("defaults lost: %+v", s)
	}
	if c := s.Center(); c[0] != 1 || c[1] != 2 || c[2] != 3 {
		t.Fatalf("Center() = %v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) = %v, want os.ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load(bad json) succeeded")
	}
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	dst := Default()
	dst.Seed = 99
	dst.InitWorkers = 8

	file := Default()
	file.Seed = 5
	file.InitWorkers = 2
	file.ChunksPerAxis = 6

	Merge(dst, file, map[string]bool{"seed": true})

	if dst.Seed != 99 {
		t.Errorf("explicit seed overwritten: %d", dst.Seed)
	}
	if dst.InitWorkers != 2 {
		t.Errorf("InitWorkers = %d, want file value 2", dst.InitWorkers)
	}
	if dst.ChunksPerAxis != 6 {
		t.Errorf("ChunksPerAxis = %d, want file value 6", dst.ChunksPerAxis)
	}

	file.LODResolutions[0] = 1
	if dst.LODResolutions[0] != 64 {
		t.Errorf("Merge shares slices with the file settings")
	}
}
