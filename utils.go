package surf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// machineEpsilon is the spacing of float64 values around 1 (2^-52).
	machineEpsilon = 0x1p-52
	// normalTolerance is the smallest magnitude a plane normal's
	// z component may have for the plane to be written as z = f(x,y).
	normalTolerance = 1e-10
	// nearXAxis is the magnitude under which the y and z components of a
	// unit axis are considered zero when picking a frame's helper vector.
	// It keeps the projected helper at least 0.1 long so frames stay
	// orthonormal to 1e-14 for axes slightly off the x axis.
	nearXAxis = 0.1
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Vec3 converts a slice of exactly 3 components to an r3.Vec.
// name is used to identify the slice in the returned error.
func Vec3(name string, s []float64) (r3.Vec, error) {
	if len(s) != 3 {
		return r3.Vec{}, &ParamError{Param: name, Value: float64(len(s)), Err: ErrDimension}
	}
	return r3.Vec{X: s[0], Y: s[1], Z: s[2]}, nil
}
