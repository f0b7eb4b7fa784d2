package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DensityFunc samples a scalar field: negative inside the surface,
// positive outside, zero on it.
type DensityFunc func(x, y, z float64) float64

// GridMin returns the lowest cell index along an axis of count cells.
// Cells occupy [GridMin(count), GridMin(count)+count).
func GridMin(count int) int {
	return -count / 2
}

// Extract runs marching cubes over xCount*yCount*zCount unit cells centered
// on the origin and returns the resulting mesh in grid coordinates.
// Non-positive counts or a nil density yield an empty mesh.
//
// Each lattice point is sampled exactly once, so density may be expensive.
// For a fixed density and grid the result is bit-identical between calls.
func Extract(density DensityFunc, xCount, yCount, zCount int) *MeshData {
	mesh := &MeshData{}
	if density == nil || xCount <= 0 || yCount <= 0 || zCount <= 0 {
		return mesh
	}

	x0, y0, z0 := GridMin(xCount), GridMin(yCount), GridMin(zCount)
	lattice := sampleLattice(density, x0, y0, z0, xCount, yCount, zCount)

	var corners [8]float64
	for cx := 0; cx < xCount; cx++ {
		for cy := 0; cy < yCount; cy++ {
			for cz := 0; cz < zCount; cz++ {
				config := 0
				for i, off := range CornerOffsets {
					v := lattice.at(cx+off[0], cy+off[1], cz+off[2])
					corners[i] = v
					if v > 0 {
						config |= 1 << i
					}
				}
				tris := CaseTable[config]
				if len(tris) == 0 {
					continue
				}
				emitCell(mesh, tris, &corners, x0+cx, y0+cy, z0+cz)
			}
		}
	}
	return mesh
}

// emitCell appends the triangles of one cell. Vertices are emitted in the
// reverse of the case table's edge order.
func emitCell(mesh *MeshData, tris []EdgeTriangle, corners *[8]float64, cx, cy, cz int) {
	for _, tri := range tris {
		base := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices,
			edgeVertex(int(tri[2]), corners, cx, cy, cz),
			edgeVertex(int(tri[1]), corners, cx, cy, cz),
			edgeVertex(int(tri[0]), corners, cx, cy, cz),
		)
		mesh.Triangles = append(mesh.Triangles, Triangle{base, base + 1, base + 2})
	}
}

// edgeVertex places the zero crossing on an edge of the cell at (cx,cy,cz).
// The edge is always walked from its lower corner so that neighbouring
// cells sharing it produce bit-identical vertices.
func edgeVertex(edge int, corners *[8]float64, cx, cy, cz int) mgl32.Vec3 {
	a, b := EdgeConnections[edge][0], EdgeConnections[edge][1]
	p0, p1 := CornerOffsets[a], CornerOffsets[b]
	if p1[0]+p1[1]+p1[2] < p0[0]+p0[1]+p0[2] {
		a, b = b, a
		p0, p1 = p1, p0
	}
	t := crossing(corners[a], corners[b])
	return mgl32.Vec3{
		float32(float64(cx+p0[0]) + t*float64(p1[0]-p0[0])),
		float32(float64(cy+p0[1]) + t*float64(p1[1]-p0[1])),
		float32(float64(cz+p0[2]) + t*float64(p1[2]-p0[2])),
	}
}

// crossing returns the edge parameter of the zero level between v0 and v1,
// clamped to [0,1]. Equal or non-finite inputs resolve to 0.
func crossing(v0, v1 float64) float64 {
	d := v1 - v0
	if d == 0 {
		return 0
	}
	t := -v0 / d
	switch {
	case math.IsNaN(t):
		return 0
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// lattice holds density samples at every cell corner of the grid.
type lattice struct {
	values  []float64
	strideX int
	strideY int
}

func (l *lattice) at(x, y, z int) float64 {
	return l.values[x*l.strideX+y*l.strideY+z]
}

func sampleLattice(density DensityFunc, x0, y0, z0, xCount, yCount, zCount int) *lattice {
	nx, ny, nz := xCount+1, yCount+1, zCount+1
	l := &lattice{
		values:  make([]float64, nx*ny*nz),
		strideX: ny * nz,
		strideY: nz,
	}
	i := 0
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				l.values[i] = density(float64(x0+x), float64(y0+y), float64(z0+z))
				i++
			}
		}
	}
	return l
}
