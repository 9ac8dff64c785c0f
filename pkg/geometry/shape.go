package geometry

import "github.com/df07/go-raycast/pkg/core"

// RayCaster2D is implemented by every 2D shape that can be hit by rays.
// Rays and shapes share the shape's local frame. A miss returns (nil, false).
type RayCaster2D interface {
	CastRayLocal(ray core.Ray2, maxDistance float64) (*core.Hit2, bool)
	shape2D()
}

// RayCaster3D is implemented by every 3D shape that can be hit by rays
type RayCaster3D interface {
	CastRayLocal(ray core.Ray3, maxDistance float64) (*core.Hit3, bool)
	shape3D()
}
