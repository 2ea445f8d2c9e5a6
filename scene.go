package surf

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Part is a named solid of a Scene.
type Part struct {
	Name string
	// Sample generates the part's mesh.
	Sample func() (Mesh, error)
}

// Scene is a composition of independent solids.
type Scene []Part

// Generate samples all parts concurrently. Meshes are returned in the order
// of their parts. The first failing part aborts the generation of parts
// not yet started and its error is returned.
func (s Scene) Generate(ctx context.Context) ([]Mesh, error) {
	meshes := make([]Mesh, len(s))
	g, ctx := errgroup.WithContext(ctx)
	for i := range s {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := s[i].Sample()
			if err != nil {
				return fmt.Errorf("part %q: %w", s[i].Name, err)
			}
			meshes[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return meshes, nil
}

// AlignedCylinders returns a scene of unit cylinders along the x, y and z
// axes and along the main diagonal, all starting at the origin.
func AlignedCylinders(radius float64, axisDiv, perimeterDiv int) Scene {
	d := 1 / math.Sqrt(3)
	ends := []struct {
		name string
		b    r3.Vec
	}{
		{"x", r3.Vec{X: 1}},
		{"y", r3.Vec{Y: 1}},
		{"z", r3.Vec{Z: 1}},
		{"diagonal", r3.Vec{X: d, Y: d, Z: d}},
	}
	scene := make(Scene, len(ends))
	for i, e := range ends {
		parms := CylinderParms{
			B:            e.b,
			Radius:       radius,
			AxisDiv:      axisDiv,
			PerimeterDiv: perimeterDiv,
		}
		scene[i] = Part{Name: "cylinder-" + e.name, Sample: func() (Mesh, error) { return Cylinder(parms) }}
	}
	return scene
}

// SuperquadricSet returns a scene of a star, a pyramid-like octahedron,
// a rounded cube and a sphere, each of unit radii, placed on the corners
// of a square of side 2.
func SuperquadricSet(alphaDiv, thetaDiv int) Scene {
	quadric := func(center r3.Vec, k float64) func() (Mesh, error) {
		return func() (Mesh, error) {
			return Superquadric(SuperquadricParms{
				Center:    center,
				Radii:     r3.Vec{X: 1, Y: 1, Z: 1},
				Exponents: r3.Vec{X: k, Y: k, Z: k},
				AlphaMin:  -180,
				AlphaMax:  180,
				ThetaMin:  -90,
				ThetaMax:  90,
				AlphaDiv:  alphaDiv,
				ThetaDiv:  thetaDiv,
			})
		}
	}
	return Scene{
		{Name: "star", Sample: quadric(r3.Vec{X: -1, Y: -1, Z: -1}, 0.5)},
		{Name: "pyramid", Sample: quadric(r3.Vec{X: 1, Y: -1, Z: -1}, 1)},
		{Name: "cube", Sample: quadric(r3.Vec{X: -1, Y: 1, Z: 1}, 4)},
		{Name: "sphere", Sample: func() (Mesh, error) {
			return Sphere(SphereParms{Center: r3.Vec{X: 1, Y: 1, Z: 1}, R: 1, AlphaDiv: alphaDiv, ThetaDiv: thetaDiv})
		}},
	}
}
