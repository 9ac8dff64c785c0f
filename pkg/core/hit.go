package core

import "github.com/go-gl/mathgl/mgl64"

// Hit2 contains information about a 2D ray-shape intersection
type Hit2 struct {
	Position mgl64.Vec2 // Point of intersection
	Normal   mgl64.Vec2 // Unit surface normal at the intersection
	Distance float64    // Distance along the ray
}

// Hit3 contains information about a 3D ray-shape intersection
type Hit3 struct {
	Position mgl64.Vec3 // Point of intersection
	Normal   mgl64.Vec3 // Unit surface normal at the intersection
	Distance float64    // Distance along the ray
}
