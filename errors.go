package surf

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension is returned when a point, vector or matrix does not have
	// the expected number of components.
	ErrDimension = errors.New("wrong dimension")
	// ErrSegmentTooShort is returned when the two points defining an axis
	// coincide or are numerically indistinguishable.
	ErrSegmentTooShort = errors.New("a-to-b segment is too short")
	// ErrDegenerateNormal is returned when a plane normal has a near-zero
	// z component so the plane cannot be written as z = f(x,y).
	ErrDegenerateNormal = errors.New("z-component of normal vector is zero")
	// ErrRange is returned when a division count is below its minimum or
	// an exponent is negative.
	ErrRange = errors.New("out of range")
)

// ParamError records which descriptor field failed validation and its value.
type ParamError struct {
	Param string
	Value float64
	// Min is the smallest accepted value, if applicable.
	Min float64
	Err error
}

func (e *ParamError) Error() string {
	switch e.Err {
	case ErrRange:
		return fmt.Sprintf("%s=%g must be greater than or equal to %g", e.Param, e.Value, e.Min)
	case ErrDimension:
		return fmt.Sprintf("%s: %v (got %g)", e.Param, e.Err, e.Value)
	}
	return fmt.Sprintf("%s=%g: %v", e.Param, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

func rangeErr(param string, value, min float64) error {
	return &ParamError{Param: param, Value: value, Min: min, Err: ErrRange}
}

func checkDiv(param string, n, min int) error {
	if n < min {
		return rangeErr(param, float64(n), float64(min))
	}
	return nil
}
