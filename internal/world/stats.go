package world

import "github.com/go-gl/mathgl/mgl32"

// FrameStats summarizes one Update call for an overlay or log line.
type FrameStats struct {
	Tick uint64
	// Chunks is the registry size.
	Chunks int
	// Pending counts chunks whose LOD differed from the desired one when
	// the tick started. Rebuilt of those were brought up to date.
	Pending int
	Rebuilt int
	// Vertices and Triangles total the live meshes after the tick.
	Vertices  int
	Triangles int
	Viewer    mgl32.Vec3
}

// Converged reports whether no chunk was left pending by this tick.
func (s FrameStats) Converged() bool {
	return s.Pending == s.Rebuilt
}
