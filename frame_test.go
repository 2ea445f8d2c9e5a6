package surf

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/surf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAlignedSystem(t *testing.T) {
	const tol = 1e-15
	for _, test := range []struct {
		a, b       r3.Vec
		e0, e1, e2 r3.Vec
	}{
		{
			a: r3.Vec{X: -1}, b: r3.Vec{X: 8},
			e0: r3.Vec{X: 1}, e1: r3.Vec{Y: 1}, e2: r3.Vec{Z: 1},
		},
		{
			a: r3.Vec{X: 8}, b: r3.Vec{X: -1},
			e0: r3.Vec{X: -1}, e1: r3.Vec{Y: 1}, e2: r3.Vec{Z: -1},
		},
		{
			a: r3.Vec{}, b: r3.Vec{Y: 3},
			e0: r3.Vec{Y: 1}, e1: r3.Vec{X: 1}, e2: r3.Vec{Z: -1},
		},
		{
			a: r3.Vec{}, b: r3.Vec{Z: 0.5},
			e0: r3.Vec{Z: 1}, e1: r3.Vec{X: 1}, e2: r3.Vec{Y: 1},
		},
	} {
		f, err := AlignedSystem(test.a, test.b)
		if err != nil {
			t.Fatal(err)
		}
		if !d3.EqualWithin(f.E0, test.e0, tol) || !d3.EqualWithin(f.E1, test.e1, tol) || !d3.EqualWithin(f.E2, test.e2, tol) {
			t.Errorf("a=%v b=%v: got %+v. want e0=%v e1=%v e2=%v", test.a, test.b, f, test.e0, test.e1, test.e2)
		}
	}
}

func TestAlignedSystemOrthonormal(t *testing.T) {
	const tol = 1e-14
	rng := rand.New(rand.NewSource(1))
	randVec := func(scale float64) r3.Vec {
		return r3.Vec{X: scale * (2*rng.Float64() - 1), Y: scale * (2*rng.Float64() - 1), Z: scale * (2*rng.Float64() - 1)}
	}
	segments := [][2]r3.Vec{
		{{}, {X: 1, Y: 1e-9}},
		{{}, {X: 1, Z: -1e-12}},
		{{}, {X: 1e-3, Y: 1, Z: 1e-3}},
		{{X: 5, Y: 5, Z: 5}, {X: 5, Y: 5, Z: 4}},
	}
	for i := 0; i < 1000; i++ {
		scale := math.Pow(10, float64(rng.Intn(7)-2))
		segments = append(segments, [2]r3.Vec{randVec(scale), randVec(scale)})
	}
	for _, s := range segments {
		a, b := s[0], s[1]
		if r3.Norm2(r3.Sub(b, a)) <= machineEpsilon {
			continue
		}
		f, err := AlignedSystem(a, b)
		if err != nil {
			t.Fatalf("a=%v b=%v: %v", a, b, err)
		}
		for _, e := range []r3.Vec{f.E0, f.E1, f.E2} {
			if math.Abs(r3.Norm(e)-1) > tol {
				t.Errorf("a=%v b=%v: non-unit vector %v", a, b, e)
			}
		}
		if math.Abs(r3.Dot(f.E0, f.E1)) > tol || math.Abs(r3.Dot(f.E1, f.E2)) > tol || math.Abs(r3.Dot(f.E0, f.E2)) > tol {
			t.Errorf("a=%v b=%v: frame not orthogonal %+v", a, b, f)
		}
		if !d3.EqualWithin(r3.Cross(f.E0, f.E1), f.E2, tol) {
			t.Errorf("a=%v b=%v: frame not right-handed %+v", a, b, f)
		}
		// E0 depends only on the direction of b-a. Segments start at the
		// origin so rounding of a+t(b-a) does not tilt the direction.
		n := r3.Sub(b, a)
		base, err := AlignedSystem(r3.Vec{}, n)
		if err != nil {
			t.Fatal(err)
		}
		for _, scale := range []float64{1e-2, 0.5, 3, 1e4} {
			scaled := r3.Scale(scale, n)
			if r3.Norm2(scaled) <= machineEpsilon {
				continue
			}
			g, err := AlignedSystem(r3.Vec{}, scaled)
			if err != nil {
				t.Fatal(err)
			}
			if !d3.EqualWithin(g.E0, base.E0, tol) {
				t.Errorf("n=%v scale=%g: got e0 %v. want %v", n, scale, g.E0, base.E0)
			}
		}
	}
}

func TestAlignedSystemTooShort(t *testing.T) {
	for _, b := range []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: 1, Y: 2, Z: 3 + 1e-9}} {
		_, err := AlignedSystem(r3.Vec{X: 1, Y: 2, Z: 3}, b)
		if !errors.Is(err, ErrSegmentTooShort) {
			t.Errorf("b=%v: got error %v. want %v", b, err, ErrSegmentTooShort)
		}
	}
}

func TestAlignedSystemNaN(t *testing.T) {
	nan := math.NaN()
	for _, b := range []r3.Vec{{X: nan}, {X: 1, Y: nan, Z: 2}} {
		_, err := AlignedSystem(r3.Vec{}, b)
		if !errors.Is(err, ErrSegmentTooShort) {
			t.Errorf("b=%v: got error %v. want %v", b, err, ErrSegmentTooShort)
		}
	}
}

func TestFramePoint(t *testing.T) {
	f, err := AlignedSystem(r3.Vec{}, r3.Vec{Z: 2})
	if err != nil {
		t.Fatal(err)
	}
	got := f.Point(r3.Vec{X: 1}, 2, 3, 4)
	want := r3.Vec{X: 4, Y: 4, Z: 2}
	if !d3.EqualWithin(got, want, 1e-15) {
		t.Errorf("got %v. want %v", got, want)
	}
}
