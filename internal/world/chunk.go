// Package world partitions the planet volume into chunks and keeps their
// meshes at the level of detail the viewer distance asks for.
package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkKey identifies a cell of the chunk grid. Each component lies in
// [0, chunks_per_axis).
type ChunkKey struct {
	X, Y, Z int
}

func (k ChunkKey) String() string {
	return fmt.Sprintf("(%d,%d,%d)", k.X, k.Y, k.Z)
}

// Chunk is the registry record of one built cell.
type Chunk struct {
	Key ChunkKey
	Min mgl32.Vec3
	Max mgl32.Vec3

	// LOD indexes the LOD table. Its resolution produced Mesh.
	LOD  int
	Mesh MeshHandle

	Vertices  int
	Triangles int
}

// Center returns the middle of the chunk box.
func (c *Chunk) Center() mgl32.Vec3 {
	return c.Min.Add(c.Max).Mul(0.5)
}

// Size returns the edge lengths of the chunk box.
func (c *Chunk) Size() mgl32.Vec3 {
	return c.Max.Sub(c.Min)
}
