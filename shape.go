package surf

import "math"

// Sign returns the sign of x: -1 if x < 0, 1 if x > 0 and 0 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// SuqSin is the superquadric sine
//
//	SuqSin(x;k) = sign(sin(x)) · |sin(x)|ᵏ
//
// With SuqCos and k=1 it traces the unit circle; smaller k square the
// curve off and larger k pinch it into a star.
// See https://en.wikipedia.org/wiki/Superquadrics.
func SuqSin(x, k float64) float64 {
	s := math.Sin(x)
	return Sign(s) * math.Pow(math.Abs(s), k)
}

// SuqCos is the superquadric cosine
//
//	SuqCos(x;k) = sign(cos(x)) · |cos(x)|ᵏ
func SuqCos(x, k float64) float64 {
	c := math.Cos(x)
	return Sign(c) * math.Pow(math.Abs(c), k)
}
