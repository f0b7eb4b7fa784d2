package noise

import (
	"math"
	"math/rand"
)

const permutationSize = 256

// gradients are the 12 cube-edge directions shared by every Gradient field.
var gradients = [12][3]float64{
	{0, 1, 1},
	{0, 1, -1},
	{0, -1, 1},
	{0, -1, -1},
	{1, 0, 1},
	{1, 0, -1},
	{-1, 0, 1},
	{-1, 0, -1},
	{1, 1, 0},
	{1, -1, 0},
	{-1, 1, 0},
	{-1, -1, 0},
}

// Gradient is seeded 3D gradient (Perlin) noise with fractal summation.
// A Gradient is immutable and safe for concurrent use.
type Gradient struct {
	params Parameters
	perm   [permutationSize]int
}

// NewGradient builds a gradient field. The permutation table is a
// Fisher-Yates shuffle of 0..255 driven by a math/rand source seeded with
// p.Seed, so equal parameters always produce equal fields.
func NewGradient(p Parameters) (*Gradient, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Gradient{params: p, perm: newPermutation(p.Seed)}, nil
}

func newPermutation(seed int64) [permutationSize]int {
	var perm [permutationSize]int
	for i := range perm {
		perm[i] = i
	}
	rnd := rand.New(rand.NewSource(seed))
	for i := permutationSize - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// WithSeed returns a copy of g using a different seed and therefore a
// regenerated permutation table.
func (g *Gradient) WithSeed(seed int64) *Gradient {
	p := g.params
	p.Seed = seed
	return &Gradient{params: p, perm: newPermutation(seed)}
}

// Parameters returns the parameters g was built with.
func (g *Gradient) Parameters() Parameters {
	return g.params
}

// Permutation returns a copy of the permutation table.
func (g *Gradient) Permutation() [permutationSize]int {
	return g.perm
}

// Value returns the fractal sum at (x, y, z).
func (g *Gradient) Value(x, y, z float64) float64 {
	return fractal(g.params, g, x, y, z)
}

func (g *Gradient) lookup(i int) int {
	return g.perm[i&(permutationSize-1)]
}

func (g *Gradient) gradient(x, y, z int) *[3]float64 {
	return &gradients[g.lookup(x+g.lookup(y+g.lookup(z)))%len(gradients)]
}

// dotCorner is the dot product of the gradient at lattice corner (cx,cy,cz)
// with the offset (dx,dy,dz) from that corner to the sample point.
func (g *Gradient) dotCorner(cx, cy, cz int, dx, dy, dz float64) float64 {
	grad := g.gradient(cx, cy, cz)
	return grad[0]*dx + grad[1]*dy + grad[2]*dz
}

// sample evaluates a single octave.
func (g *Gradient) sample(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	x0, y0, z0 := int(fx), int(fy), int(fz)
	x1, y1, z1 := x0+1, y0+1, z0+1

	// offsets from the lower corner
	dx, dy, dz := x-fx, y-fy, z-fz

	d000 := g.dotCorner(x0, y0, z0, dx, dy, dz)
	d100 := g.dotCorner(x1, y0, z0, dx-1, dy, dz)
	d010 := g.dotCorner(x0, y1, z0, dx, dy-1, dz)
	d110 := g.dotCorner(x1, y1, z0, dx-1, dy-1, dz)
	d001 := g.dotCorner(x0, y0, z1, dx, dy, dz-1)
	d101 := g.dotCorner(x1, y0, z1, dx-1, dy, dz-1)
	d011 := g.dotCorner(x0, y1, z1, dx, dy-1, dz-1)
	d111 := g.dotCorner(x1, y1, z1, dx-1, dy-1, dz-1)

	u, v, w := fade(dx), fade(dy), fade(dz)

	// X first, then Y, then Z
	i00 := lerp(d000, d100, u)
	i10 := lerp(d010, d110, u)
	i01 := lerp(d001, d101, u)
	i11 := lerp(d011, d111, u)

	i0 := lerp(i00, i10, v)
	i1 := lerp(i01, i11, v)

	return lerp(i0, i1, w)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
