// Package surf samples parametric surfaces into structured meshes of 3D points.
//
// Each sampler (Cylinder, Plane, Hemisphere, Superquadric, Sphere) takes a
// parameter struct describing the solid and returns a Mesh: three equally
// shaped matrices X, Y, Z holding the coordinates of a rectangular grid of
// points, ready to be drawn as a surface, wireframe or point cloud.
// Invalid parameters are reported as a *ParamError wrapping one of
// ErrDimension, ErrSegmentTooShort, ErrDegenerateNormal or ErrRange.
//
// Samplers are pure functions and safe for concurrent use; see Scene.
package surf
