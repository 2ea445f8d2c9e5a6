package surf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is a right-handed orthonormal basis with E2 = E0 × E1.
type Frame struct {
	E0, E1, E2 r3.Vec
}

// AlignedSystem returns the orthonormal frame whose first axis E0
// points from a towards b. It fails with ErrSegmentTooShort when
// |b-a|² is not greater than machine epsilon or is NaN.
func AlignedSystem(a, b r3.Vec) (Frame, error) {
	n := r3.Sub(b, a)
	n2 := r3.Norm2(n)
	if !(n2 > machineEpsilon) {
		return Frame{}, &ParamError{Param: "|b-a|²", Value: n2, Err: ErrSegmentTooShort}
	}
	e0 := unit(n, math.Sqrt(n2))
	// Helper direction that is never parallel to the axis: along y when
	// the axis runs along x, along x otherwise.
	var x r3.Vec
	if math.Abs(e0.Y) <= nearXAxis && math.Abs(e0.Z) <= nearXAxis {
		x = r3.Add(e0, r3.Vec{Y: 1})
	} else {
		x = r3.Add(e0, r3.Vec{X: 1})
	}
	// Remove the axis component; e0 is unit so no division by n·n is needed.
	q := r3.Sub(x, r3.Scale(r3.Dot(x, e0), e0))
	e1 := unit(q, r3.Norm(q))
	return Frame{E0: e0, E1: e1, E2: r3.Cross(e0, e1)}, nil
}

// Point maps local coordinates (u, v, w) along E0, E1, E2 to world
// coordinates relative to origin.
func (f Frame) Point(origin r3.Vec, u, v, w float64) r3.Vec {
	p := r3.Add(origin, r3.Scale(u, f.E0))
	p = r3.Add(p, r3.Scale(v, f.E1))
	return r3.Add(p, r3.Scale(w, f.E2))
}

func unit(v r3.Vec, norm float64) r3.Vec {
	return r3.Vec{X: v.X / norm, Y: v.Y / norm, Z: v.Z / norm}
}
