package world

import (
	"errors"
	"fmt"
	"sync"

	"planet-lod/internal/meshing"
)

// MeshHandle is an opaque reference to a mesh owned by a Renderer.
type MeshHandle uint64

// NoMesh marks a chunk whose current mesh is empty.
const NoMesh MeshHandle = 0

// Renderer is the rendering host. It owns every handle it returns from
// Upload until the handle is passed to Release, which happens exactly once.
type Renderer interface {
	Upload(key ChunkKey, mesh *meshing.MeshData) (MeshHandle, error)
	Release(h MeshHandle) error
}

// ErrUnknownHandle is returned by MemoryRenderer.Release for a handle that
// is not live.
var ErrUnknownHandle = errors.New("world: unknown mesh handle")

type storedMesh struct {
	key       ChunkKey
	positions []float32
	indices   []uint32
}

// MemoryRenderer keeps uploaded meshes as flat buffers in memory. It is
// the headless host used by the driver and the tests.
type MemoryRenderer struct {
	mu       sync.Mutex
	next     MeshHandle
	live     map[MeshHandle]storedMesh
	uploads  int
	releases int
}

// NewMemoryRenderer returns an empty renderer.
func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{live: make(map[MeshHandle]storedMesh)}
}

// Upload copies mesh into flat position and index buffers.
func (r *MemoryRenderer) Upload(key ChunkKey, mesh *meshing.MeshData) (MeshHandle, error) {
	if mesh == nil {
		return NoMesh, fmt.Errorf("upload chunk %v: nil mesh", key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.live[r.next] = storedMesh{
		key:       key,
		positions: mesh.Positions(),
		indices:   mesh.Indices(),
	}
	r.uploads++
	return r.next, nil
}

// Release frees h. Releasing NoMesh, a handle never issued, or a handle
// twice fails with ErrUnknownHandle.
func (r *MemoryRenderer) Release(h MeshHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[h]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	delete(r.live, h)
	r.releases++
	return nil
}

// Live returns the number of handles not yet released.
func (r *MemoryRenderer) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Counts returns the total number of uploads and releases performed.
func (r *MemoryRenderer) Counts() (uploads, releases int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uploads, r.releases
}

// Buffers returns the stored buffers of a live handle.
func (r *MemoryRenderer) Buffers(h MeshHandle) (key ChunkKey, positions []float32, indices []uint32, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.live[h]
	return m.key, m.positions, m.indices, ok
}
