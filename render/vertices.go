package render

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/surf"
)

// Vertices32 appends the points of m to dst in row-major order as float32
// vectors, ready to be uploaded to a GPU vertex buffer. Vertex (i,j) is
// found at index len(dst)+i*cols+j of the result.
// It fails if a coordinate is not finite once converted to float32.
func Vertices32(dst []ms3.Vec, m surf.Mesh) ([]ms3.Vec, error) {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := m.At(i, j)
			v := ms3.Vec{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
			if bad32(v) {
				return dst, fmt.Errorf("vertex (%d,%d)=%v not representable as float32", i, j, p)
			}
			dst = append(dst, v)
		}
	}
	return dst, nil
}

func bad32(v ms3.Vec) bool {
	return math32.IsNaN(v.X) || math32.IsInf(v.X, 0) ||
		math32.IsNaN(v.Y) || math32.IsInf(v.Y, 0) ||
		math32.IsNaN(v.Z) || math32.IsInf(v.Z, 0)
}
