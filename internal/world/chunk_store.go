package world

import (
	"sync"
)

// ChunkStore is the ownership table from ChunkKey to Chunk. It remembers
// insertion order, which is the natural iteration order of the registry.
// Records are handed out by value; every mutation goes through the store.
type ChunkStore struct {
	mu       sync.RWMutex
	chunks   map[ChunkKey]*Chunk
	order    []ChunkKey
	modCount uint64 // Increases on any add or mesh swap
}

// NewChunkStore creates an empty store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkKey]*Chunk),
	}
}

// Add inserts c. It returns false and leaves the store untouched when the
// key is already present.
func (cs *ChunkStore) Add(c Chunk) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, exists := cs.chunks[c.Key]; exists {
		return false
	}
	cs.chunks[c.Key] = &c
	cs.order = append(cs.order, c.Key)
	cs.modCount++
	return true
}

// Get returns a copy of the chunk stored under key.
func (cs *ChunkStore) Get(key ChunkKey) (Chunk, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	c, ok := cs.chunks[key]
	if !ok {
		return Chunk{}, false
	}
	return *c, true
}

// Len returns the number of chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.order)
}

// Keys returns the keys in insertion order.
func (cs *ChunkStore) Keys() []ChunkKey {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]ChunkKey, len(cs.order))
	copy(out, cs.order)
	return out
}

// Each calls fn with a copy of every chunk in insertion order until fn
// returns false. fn must not call back into the store.
func (cs *ChunkStore) Each(fn func(Chunk) bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	for _, k := range cs.order {
		if !fn(*cs.chunks[k]) {
			return
		}
	}
}

// SwapMesh installs a new mesh and LOD for key in one step and returns the
// record as it was before. The caller owns releasing the previous handle.
func (cs *ChunkStore) SwapMesh(key ChunkKey, lod int, mesh MeshHandle, vertices, triangles int) (Chunk, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	c, ok := cs.chunks[key]
	if !ok {
		return Chunk{}, false
	}
	prev := *c
	c.LOD = lod
	c.Mesh = mesh
	c.Vertices = vertices
	c.Triangles = triangles
	cs.modCount++
	return prev, true
}

// ModCount returns a counter that changes whenever the store is mutated.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}
