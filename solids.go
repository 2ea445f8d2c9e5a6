package surf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CylinderParms describes a cylinder around the axis from A to B.
type CylinderParms struct {
	A, B   r3.Vec
	Radius float64
	// AxisDiv is the number of divisions along the axis (>= 1).
	AxisDiv int
	// PerimeterDiv is the number of divisions along the cross-section perimeter (>= 3).
	PerimeterDiv int
}

// Cylinder returns a (PerimeterDiv+1)-by-(AxisDiv+1) mesh of the cylinder
// surface. Row i sweeps the angle i·2π/PerimeterDiv around the axis and
// column j the distance j·|B-A|/AxisDiv along it. The last row repeats the
// first so the rendered surface closes without a seam.
func Cylinder(p CylinderParms) (Mesh, error) {
	if err := checkDiv("AxisDiv", p.AxisDiv, 1); err != nil {
		return Mesh{}, err
	}
	if err := checkDiv("PerimeterDiv", p.PerimeterDiv, 3); err != nil {
		return Mesh{}, err
	}
	frame, err := AlignedSystem(p.A, p.B)
	if err != nil {
		return Mesh{}, err
	}
	height := r3.Norm(r3.Sub(p.B, p.A))
	nAlpha, nHeight := p.PerimeterDiv+1, p.AxisDiv+1
	dh := height / float64(p.AxisDiv)
	dv := tau / float64(p.PerimeterDiv)
	m := newMesh(nAlpha, nHeight)
	for i := 0; i < nAlpha; i++ {
		// Angle 2π is evaluated as angle 0 to close the perimeter exactly.
		v := float64(i%p.PerimeterDiv) * dv
		s, c := math.Sincos(v)
		for j := 0; j < nHeight; j++ {
			u := float64(j) * dh
			m.set(i, j, frame.Point(p.A, u, p.Radius*s, p.Radius*c))
		}
	}
	return m, nil
}

// PlaneParms describes a plane through P with normal N, sampled over
// [Xmin,Xmax]×[Ymin,Ymax]. N must have a non-zero z component.
type PlaneParms struct {
	P, N       r3.Vec
	Xmin, Xmax float64
	Ymin, Ymax float64
	// XDiv and YDiv are the number of divisions along x and y (>= 2).
	XDiv, YDiv int
}

// Plane returns the (YDiv+1)-by-(XDiv+1) meshgrid of the plane z = f(x,y).
// Vertical planes, whose normal has a near-zero z component, fail with ErrDegenerateNormal.
func Plane(p PlaneParms) (Mesh, error) {
	if !(math.Abs(p.N.Z) >= normalTolerance) {
		return Mesh{}, &ParamError{Param: "N.Z", Value: p.N.Z, Err: ErrDegenerateNormal}
	}
	if err := checkDiv("XDiv", p.XDiv, 2); err != nil {
		return Mesh{}, err
	}
	if err := checkDiv("YDiv", p.YDiv, 2); err != nil {
		return Mesh{}, err
	}
	n := p.N
	d := -r3.Dot(n, p.P)
	x, y, z := Generate3D(p.Xmin, p.Xmax, p.Ymin, p.Ymax, p.XDiv+1, p.YDiv+1, func(x, y float64) float64 {
		return (-d - n.X*x - n.Y*y) / n.Z
	})
	return NewMesh(x, y, z)
}

// HemisphereParms describes half a sphere of radius R centered at Center.
// The azimuth α sweeps [AlphaMin, AlphaMax] degrees while the polar angle
// always sweeps a quarter turn [0, 90] degrees from the pole.
type HemisphereParms struct {
	Center             r3.Vec
	R                  float64
	AlphaMin, AlphaMax float64
	// AlphaDiv and ThetaDiv are the number of azimuth and polar divisions (>= 2).
	AlphaDiv, ThetaDiv int
	// Cup places the pole below Center so the hemisphere is shaped like a bowl.
	Cup bool
}

// Hemisphere returns the (AlphaDiv+1)-by-(ThetaDiv+1) mesh of a hemisphere.
// Column 0 is the pole.
func Hemisphere(p HemisphereParms) (Mesh, error) {
	if err := checkDiv("AlphaDiv", p.AlphaDiv, 2); err != nil {
		return Mesh{}, err
	}
	if err := checkDiv("ThetaDiv", p.ThetaDiv, 2); err != nil {
		return Mesh{}, err
	}
	aMin, aMax := DtoR(p.AlphaMin), DtoR(p.AlphaMax)
	dAlpha := (aMax - aMin) / float64(p.AlphaDiv)
	dTheta := (pi / 2) / float64(p.ThetaDiv)
	zsign := 1.0
	if p.Cup {
		zsign = -1
	}
	c, r := p.Center, p.R
	m := newMesh(p.AlphaDiv+1, p.ThetaDiv+1)
	for i := 0; i <= p.AlphaDiv; i++ {
		sa, ca := math.Sincos(aMin + float64(i)*dAlpha)
		for j := 0; j <= p.ThetaDiv; j++ {
			st, ct := math.Sincos(float64(j) * dTheta)
			m.set(i, j, r3.Vec{
				X: c.X + r*ca*st,
				Y: c.Y + r*sa*st,
				Z: c.Z + zsign*r*ct,
			})
		}
	}
	return m, nil
}

// SuperquadricParms describes a superquadric centered at Center with
// per-axis Radii and Exponents. Exponents of 2 give an ellipsoid, exponents
// towards 0 a star shape and large exponents a box.
// Angles are in degrees: α is the azimuth and θ the elevation.
type SuperquadricParms struct {
	Center, Radii, Exponents r3.Vec
	AlphaMin, AlphaMax       float64
	ThetaMin, ThetaMax       float64
	// AlphaDiv and ThetaDiv are the number of α and θ divisions (>= 2).
	AlphaDiv, ThetaDiv int
}

// Superquadric returns the (AlphaDiv+1)-by-(ThetaDiv+1) mesh of a superquadric.
// See https://en.wikipedia.org/wiki/Superquadrics.
func Superquadric(p SuperquadricParms) (Mesh, error) {
	if err := checkDiv("AlphaDiv", p.AlphaDiv, 2); err != nil {
		return Mesh{}, err
	}
	if err := checkDiv("ThetaDiv", p.ThetaDiv, 2); err != nil {
		return Mesh{}, err
	}
	k := p.Exponents
	for _, e := range []struct {
		name  string
		value float64
	}{{"Exponents.X", k.X}, {"Exponents.Y", k.Y}, {"Exponents.Z", k.Z}} {
		if !(e.value >= 0) {
			return Mesh{}, rangeErr(e.name, e.value, 0)
		}
	}
	aa, bb, cc := 2/k.X, 2/k.Y, 2/k.Z
	aMin, aMax := DtoR(p.AlphaMin), DtoR(p.AlphaMax)
	tMin, tMax := DtoR(p.ThetaMin), DtoR(p.ThetaMax)
	dAlpha := (aMax - aMin) / float64(p.AlphaDiv)
	dTheta := (tMax - tMin) / float64(p.ThetaDiv)
	c, r := p.Center, p.Radii
	m := newMesh(p.AlphaDiv+1, p.ThetaDiv+1)
	for i := 0; i <= p.AlphaDiv; i++ {
		alpha := aMin + float64(i)*dAlpha
		for j := 0; j <= p.ThetaDiv; j++ {
			theta := tMin + float64(j)*dTheta
			m.set(i, j, r3.Vec{
				X: c.X + r.X*SuqCos(theta, aa)*SuqCos(alpha, aa),
				Y: c.Y + r.Y*SuqCos(theta, bb)*SuqSin(alpha, bb),
				Z: c.Z + r.Z*SuqSin(theta, cc),
			})
		}
	}
	return m, nil
}

// SphereParms describes a sphere of radius R centered at Center.
type SphereParms struct {
	Center             r3.Vec
	R                  float64
	AlphaDiv, ThetaDiv int
}

// Sphere returns the mesh of a full sphere. It is the superquadric with
// equal radii, all exponents equal to 2, α in [-180,180] and θ in [-90,90].
func Sphere(p SphereParms) (Mesh, error) {
	return Superquadric(SuperquadricParms{
		Center:    p.Center,
		Radii:     r3.Vec{X: p.R, Y: p.R, Z: p.R},
		Exponents: r3.Vec{X: 2, Y: 2, Z: 2},
		AlphaMin:  -180,
		AlphaMax:  180,
		ThetaMin:  -90,
		ThetaMax:  90,
		AlphaDiv:  p.AlphaDiv,
		ThetaDiv:  p.ThetaDiv,
	})
}
