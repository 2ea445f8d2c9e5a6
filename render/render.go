package render

import (
	"io"
	"math"

	"github.com/soypat/surf"
	"github.com/soypat/surf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer reads triangles into t, returning the number of triangles read.
// It returns io.EOF once there are no more triangles to read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle following the
// right-hand rule on its vertex order.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if any two vertices of the triangle are within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}

// MeshRenderer tessellates a structured mesh. Each grid cell spanning rows i,i+1
// and columns j,j+1 yields up to two triangles. Triangles collapsed onto a
// line or a point, such as those touching a hemisphere's pole, are skipped.
type MeshRenderer struct {
	mesh       surf.Mesh
	rows, cols int
	// next cell to tessellate.
	i, j    int
	tol     float64
	pending triangle3Buffer
}

var _ Renderer = (*MeshRenderer)(nil)

// NewMeshRenderer returns a Renderer over the cells of m.
func NewMeshRenderer(m surf.Mesh) *MeshRenderer {
	rows, cols := m.Dims()
	size := r3.Norm(d3.Box(m.Bounds()).Size())
	return &MeshRenderer{
		mesh: m,
		rows: rows,
		cols: cols,
		tol:  1e-12 * math.Max(1, size),
	}
}

// ReadTriangles reads the next triangles of the mesh into t.
func (r *MeshRenderer) ReadTriangles(t []Triangle3) (int, error) {
	n := 0
	for n < len(t) {
		if r.pending.Len() == 0 && !r.nextCell() {
			break
		}
		n += r.pending.Read(t[n:])
	}
	if n == 0 && len(t) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// nextCell tessellates cells until one yields a triangle. It returns
// false once all cells have been consumed.
func (r *MeshRenderer) nextCell() bool {
	for r.i+1 < r.rows && r.cols > 1 {
		i, j := r.i, r.j
		r.j++
		if r.j+1 >= r.cols {
			r.j = 0
			r.i++
		}
		p00, p01 := r.mesh.At(i, j), r.mesh.At(i, j+1)
		p10, p11 := r.mesh.At(i+1, j), r.mesh.At(i+1, j+1)
		for _, tri := range [2]Triangle3{
			{V: [3]r3.Vec{p00, p10, p11}},
			{V: [3]r3.Vec{p00, p11, p01}},
		} {
			if !tri.Degenerate(r.tol) {
				r.pending.Write([]Triangle3{tri})
			}
		}
		if r.pending.Len() > 0 {
			return true
		}
	}
	return false
}
