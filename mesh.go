package surf

import (
	"github.com/soypat/surf/internal/d3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a structured grid of 3D points stored as three equally shaped
// matrices. The point at row i, column j is (X[i,j], Y[i,j], Z[i,j]).
// Samplers use rows for the angular (perimeter) parameter and columns
// for the axial (polar) parameter.
//
// A Mesh is never modified by this package once returned. A Mesh returned
// together with a non-nil error is the zero Mesh and holds no points.
type Mesh struct {
	X, Y, Z *mat.Dense
}

// NewMesh returns a Mesh from row slices such as those returned by Generate3D.
// All three must be non-empty and share the same shape.
func NewMesh(x, y, z [][]float64) (Mesh, error) {
	r, c, err := rowsShape("x", x)
	if err != nil {
		return Mesh{}, err
	}
	for _, m := range []struct {
		name string
		rows [][]float64
	}{{"y", y}, {"z", z}} {
		rm, cm, err := rowsShape(m.name, m.rows)
		if err != nil {
			return Mesh{}, err
		}
		if rm != r || cm != c {
			return Mesh{}, &ParamError{Param: m.name, Value: float64(rm * cm), Err: ErrDimension}
		}
	}
	return Mesh{X: denseFromRows(x, r, c), Y: denseFromRows(y, r, c), Z: denseFromRows(z, r, c)}, nil
}

func newMesh(rows, cols int) Mesh {
	return Mesh{
		X: mat.NewDense(rows, cols, nil),
		Y: mat.NewDense(rows, cols, nil),
		Z: mat.NewDense(rows, cols, nil),
	}
}

// Dims returns the number of rows and columns of the mesh.
// The zero Mesh, returned by samplers alongside an error, has no rows.
func (m Mesh) Dims() (rows, cols int) {
	if m.X == nil {
		return 0, 0
	}
	return m.X.Dims()
}

// At returns the point at row i, column j.
func (m Mesh) At(i, j int) r3.Vec {
	return r3.Vec{X: m.X.At(i, j), Y: m.Y.At(i, j), Z: m.Z.At(i, j)}
}

func (m Mesh) set(i, j int, p r3.Vec) {
	m.X.Set(i, j, p.X)
	m.Y.Set(i, j, p.Y)
	m.Z.Set(i, j, p.Z)
}

// Bounds returns the axis-aligned bounding box of all points in the mesh.
// It returns the zero box for an empty mesh.
func (m Mesh) Bounds() r3.Box {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return r3.Box{}
	}
	p := m.At(0, 0)
	bb := d3.Box{Min: p, Max: p}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			bb = bb.Include(m.At(i, j))
		}
	}
	return r3.Box(bb)
}

func rowsShape(name string, rows [][]float64) (r, c int, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, &ParamError{Param: name, Value: 0, Err: ErrDimension}
	}
	c = len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != c {
			return 0, 0, &ParamError{Param: name, Value: float64(len(row)), Err: ErrDimension}
		}
	}
	return len(rows), c, nil
}

func denseFromRows(rows [][]float64, r, c int) *mat.Dense {
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data)
}
