package meshing

import "github.com/go-gl/mathgl/mgl32"

// VertexStride is number of float32 per vertex in Interleaved (pos.xyz + normal.xyz)
const VertexStride = 6

// Triangle holds three indices into MeshData.Vertices.
type Triangle [3]uint32

// MeshData is the output of one extraction: vertex positions and the
// triangles that reference them. Triangles wind counter-clockwise when
// viewed from the positive (outside) side of the density field.
type MeshData struct {
	Vertices  []mgl32.Vec3
	Triangles []Triangle
}

// VertexCount returns the number of vertices.
func (m *MeshData) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *MeshData) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Transform returns a copy of m with fn applied to every vertex. Triangles
// are copied unchanged.
func (m *MeshData) Transform(fn func(mgl32.Vec3) mgl32.Vec3) *MeshData {
	out := &MeshData{
		Vertices:  make([]mgl32.Vec3, len(m.Vertices)),
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = fn(v)
	}
	copy(out.Triangles, m.Triangles)
	return out
}

// Positions flattens the vertices into x,y,z triples.
func (m *MeshData) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Indices flattens the triangles into an index buffer.
func (m *MeshData) Indices() []uint32 {
	out := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}

// Interleaved emits a non-indexed triangle list with a flat face normal per
// vertex, VertexStride floats each. Degenerate triangles get a zero normal.
func (m *MeshData) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Triangles)*3*VertexStride)
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		n := FaceNormal(a, b, c)
		for _, p := range [3]mgl32.Vec3{a, b, c} {
			out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}
	return out
}

// FaceNormal returns the unit normal of triangle abc by the right-hand
// rule, or the zero vector when the triangle has no area.
func FaceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl32.Vec3{}
}
