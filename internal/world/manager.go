package world

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"planet-lod/internal/config"
	"planet-lod/internal/meshing"
	"planet-lod/internal/noise"
	"planet-lod/internal/profiling"
)

var (
	// ErrReleaseFailed wraps a Renderer.Release failure together with the
	// chunk that owned the handle.
	ErrReleaseFailed = errors.New("world: mesh release failed")
	// ErrClosed is returned by operations on a closed manager.
	ErrClosed = errors.New("world: chunk manager closed")
	// ErrInitialized is returned by a second Initialize call.
	ErrInitialized = errors.New("world: chunk manager already initialized")
)

// ChunkManager owns the chunk registry of one planet. It is driven from a
// single goroutine: Initialize once, then Update every tick, then Close.
type ChunkManager struct {
	settings config.Settings
	lods     LODTable
	center   mgl64.Vec3
	field    noise.Field
	renderer Renderer
	store    *ChunkStore
	log      *slog.Logger
	prof     *profiling.Tracker

	tick        uint64
	last        FrameStats
	initialized bool
	closed      bool
}

// NewChunkManager validates s and returns a manager with an empty registry.
// A nil field is built from s with NewField. A nil logger discards output.
func NewChunkManager(s *config.Settings, field noise.Field, r Renderer, log *slog.Logger) (*ChunkManager, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil settings", config.ErrInvalidConfiguration)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil renderer", config.ErrInvalidConfiguration)
	}
	if field == nil {
		f, err := NewField(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
		}
		field = f
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	settings := *s
	settings.NoiseLayers = slices.Clone(s.NoiseLayers)
	settings.LODDistances = slices.Clone(s.LODDistances)
	settings.LODResolutions = slices.Clone(s.LODResolutions)

	return &ChunkManager{
		settings: settings,
		lods:     LODTable{Distances: settings.LODDistances, Resolutions: settings.LODResolutions},
		center:   mgl64.Vec3(settings.TargetCenter),
		field:    field,
		renderer: r,
		store:    NewChunkStore(),
		log:      log.With("component", "world"),
	}, nil
}

// SetTracker enables timing of updates, rebuilds and extractions.
func (m *ChunkManager) SetTracker(t *profiling.Tracker) {
	m.prof = t
}

// Intersects reports whether the box [lo, hi] comes closer than
// radius+margin to center.
func Intersects(lo, hi, center mgl64.Vec3, radius, margin float64) bool {
	closest := mgl64.Vec3{
		mgl64.Clamp(center[0], lo[0], hi[0]),
		mgl64.Clamp(center[1], lo[1], hi[1]),
		mgl64.Clamp(center[2], lo[2], hi[2]),
	}
	return closest.Sub(center).Len() < radius+margin
}

// bounds returns the world box of k. The grid spans the target radius
// around the target center along each axis.
func (m *ChunkManager) bounds(k ChunkKey) (lo, hi mgl64.Vec3) {
	size := m.settings.ChunkSize()
	r := m.settings.TargetRadius
	lo = mgl64.Vec3{
		m.center[0] - r + float64(k.X)*size,
		m.center[1] - r + float64(k.Y)*size,
		m.center[2] - r + float64(k.Z)*size,
	}
	return lo, lo.Add(mgl64.Vec3{size, size, size})
}

// DensityContext returns the density evaluation context of chunk k at the
// resolution of lod.
func (m *ChunkManager) DensityContext(k ChunkKey, lod int) DensityContext {
	lo, hi := m.bounds(k)
	return DensityContext{
		Min:        lo,
		Max:        hi,
		Resolution: m.lods.Resolution(lod),
		Center:     m.center,
		Radius:     m.settings.TargetRadius,
		Layers:     m.settings.NoiseLayers,
		Field:      m.field,
	}
}

// Initialize fills the registry with every chunk that can intersect the
// planet and builds each at the coarsest LOD. On failure the meshes
// uploaded so far are released and the manager is closed.
func (m *ChunkManager) Initialize(ctx context.Context) error {
	if m.closed {
		return ErrClosed
	}
	if m.initialized {
		return ErrInitialized
	}
	m.initialized = true

	n := m.settings.ChunksPerAxis
	var keys []ChunkKey
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				k := ChunkKey{X: x, Y: y, Z: z}
				lo, hi := m.bounds(k)
				if Intersects(lo, hi, m.center, m.settings.TargetRadius, m.settings.Margin) {
					keys = append(keys, k)
				}
			}
		}
	}

	lod := m.lods.Coarsest()
	contexts := make([]DensityContext, len(keys))
	for i, k := range keys {
		contexts[i] = m.DensityContext(k, lod)
	}
	meshes, err := m.extractInitial(ctx, contexts)
	if err != nil {
		m.closed = true
		return fmt.Errorf("initial extraction: %w", err)
	}

	for i, k := range keys {
		h, mesh, err := m.upload(k, contexts[i], meshes[i])
		if err != nil {
			m.closed = true
			return errors.Join(err, m.releaseAll())
		}
		lo, hi := m.bounds(k)
		m.store.Add(Chunk{
			Key:       k,
			Min:       vec32(lo),
			Max:       vec32(hi),
			LOD:       lod,
			Mesh:      h,
			Vertices:  mesh.VertexCount(),
			Triangles: mesh.TriangleCount(),
		})
	}

	m.log.Info("chunks initialized",
		"chunks", m.store.Len(),
		"grid", n*n*n,
		"lod", lod,
		"resolution", m.lods.Resolution(lod),
		"workers", m.settings.InitWorkers)
	return nil
}

func (m *ChunkManager) extractInitial(ctx context.Context, contexts []DensityContext) ([]*meshing.MeshData, error) {
	defer m.prof.Track("world.Initialize")()
	if m.settings.InitWorkers > 1 {
		jobs := make([]meshing.Job, len(contexts))
		for i, c := range contexts {
			jobs[i] = meshing.Job{Density: c.Sample, XCount: c.Resolution, YCount: c.Resolution, ZCount: c.Resolution}
		}
		return meshing.ExtractAll(ctx, m.settings.InitWorkers, jobs)
	}

	meshes := make([]*meshing.MeshData, len(contexts))
	for i, c := range contexts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		meshes[i] = meshing.Extract(c.Sample, c.Resolution, c.Resolution, c.Resolution)
	}
	return meshes, nil
}

// upload moves local into world space and hands it to the renderer. Empty
// meshes are not uploaded and get NoMesh.
func (m *ChunkManager) upload(k ChunkKey, dc DensityContext, local *meshing.MeshData) (MeshHandle, *meshing.MeshData, error) {
	if local.IsEmpty() {
		return NoMesh, local, nil
	}
	mesh := local.Transform(dc.VertexToWorld)
	h, err := m.renderer.Upload(k, mesh)
	if err != nil {
		return NoMesh, nil, fmt.Errorf("upload chunk %v: %w", k, err)
	}
	return h, mesh, nil
}

type pendingChunk struct {
	chunk    Chunk
	lod      int
	distance float32
}

// pending lists the chunks whose LOD differs from the one viewer asks for,
// in registry order or nearest first.
func (m *ChunkManager) pending(viewer mgl32.Vec3) []pendingChunk {
	var out []pendingChunk
	m.store.Each(func(c Chunk) bool {
		d := viewer.Sub(c.Center()).Len()
		if want := m.lods.Desired(float64(d)); want != c.LOD {
			out = append(out, pendingChunk{chunk: c, lod: want, distance: d})
		}
		return true
	})
	if m.settings.PrioritizeNearest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].distance < out[j].distance })
	}
	return out
}

// Update evaluates every chunk against viewer and rebuilds at most
// max_updates_per_tick of those whose LOD changed. Chunks left over keep
// their stale mesh until a later tick. Upload and release failures are
// joined into the returned error; the other rebuilds of the tick still run.
func (m *ChunkManager) Update(viewer mgl32.Vec3) (FrameStats, error) {
	if m.closed {
		return m.last, ErrClosed
	}
	defer m.prof.Track("world.UpdateChunkLODs")()
	m.tick++

	pending := m.pending(viewer)
	budget := min(len(pending), m.settings.MaxUpdatesPerTick)

	var errs []error
	rebuilt := 0
	for _, p := range pending[:budget] {
		swapped, err := m.rebuild(p.chunk, p.lod)
		if swapped {
			rebuilt++
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	stats := FrameStats{
		Tick:    m.tick,
		Chunks:  m.store.Len(),
		Pending: len(pending),
		Rebuilt: rebuilt,
		Viewer:  viewer,
	}
	stats.Vertices, stats.Triangles = m.totals()
	m.last = stats
	return stats, errors.Join(errs...)
}

// rebuild extracts c at lod, swaps the new mesh in and releases the old
// one. swapped is false when the upload failed and c kept its state.
func (m *ChunkManager) rebuild(c Chunk, lod int) (swapped bool, err error) {
	defer m.prof.Track("world.rebuild")()

	dc := m.DensityContext(c.Key, lod)
	stop := m.prof.Track("meshing.Extract")
	local := meshing.Extract(dc.Sample, dc.Resolution, dc.Resolution, dc.Resolution)
	stop()

	h, mesh, err := m.upload(c.Key, dc, local)
	if err != nil {
		m.log.Warn("chunk rebuild skipped", "chunk", c.Key, "lod", lod, "error", err)
		return false, err
	}
	prev, _ := m.store.SwapMesh(c.Key, lod, h, mesh.VertexCount(), mesh.TriangleCount())
	m.log.Debug("chunk rebuilt",
		"chunk", c.Key,
		"from", prev.LOD,
		"to", lod,
		"resolution", dc.Resolution,
		"triangles", mesh.TriangleCount())
	return true, m.release(prev)
}

// release frees the handle of a record that was just swapped out. The
// handle is not retried after a failure.
func (m *ChunkManager) release(c Chunk) error {
	if c.Mesh == NoMesh {
		return nil
	}
	if err := m.renderer.Release(c.Mesh); err != nil {
		m.log.Error("mesh release failed", "chunk", c.Key, "handle", c.Mesh, "error", err)
		return fmt.Errorf("%w: chunk %v handle %d: %w", ErrReleaseFailed, c.Key, c.Mesh, err)
	}
	return nil
}

func (m *ChunkManager) releaseAll() error {
	var errs []error
	for _, k := range m.store.Keys() {
		c, _ := m.store.Get(k)
		if c.Mesh == NoMesh {
			continue
		}
		prev, _ := m.store.SwapMesh(k, c.LOD, NoMesh, 0, 0)
		errs = append(errs, m.release(prev))
	}
	return errors.Join(errs...)
}

// Close releases every live mesh handle. Later calls do nothing.
func (m *ChunkManager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	err := m.releaseAll()
	m.log.Info("chunks released", "chunks", m.store.Len(), "error", err)
	return err
}

func (m *ChunkManager) totals() (vertices, triangles int) {
	m.store.Each(func(c Chunk) bool {
		vertices += c.Vertices
		triangles += c.Triangles
		return true
	})
	return vertices, triangles
}

// Chunks returns a snapshot of the registry in iteration order.
func (m *ChunkManager) Chunks() []Chunk {
	out := make([]Chunk, 0, m.store.Len())
	m.store.Each(func(c Chunk) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Chunk returns the record of k.
func (m *ChunkManager) Chunk(k ChunkKey) (Chunk, bool) {
	return m.store.Get(k)
}

// Len returns the registry size.
func (m *ChunkManager) Len() int {
	return m.store.Len()
}

// LODs returns the LOD table.
func (m *ChunkManager) LODs() LODTable {
	return m.lods
}

// Field returns the noise field the densities sample.
func (m *ChunkManager) Field() noise.Field {
	return m.field
}

// Stats returns the statistics of the last Update.
func (m *ChunkManager) Stats() FrameStats {
	return m.last
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
