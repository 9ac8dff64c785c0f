package geometry

import (
	"math"

	"github.com/df07/go-raycast/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Rectangle is an axis-aligned rectangle centered at the local origin
type Rectangle struct {
	halfSize mgl64.Vec2
	vertices [4]mgl64.Vec2 // Counter-clockwise from the bottom-left corner
}

// NewRectangle creates a rectangle from its half-extents
func NewRectangle(halfSize mgl64.Vec2) (Rectangle, error) {
	for axis, half := range halfSize {
		if !(half > 0) || math.IsInf(half, 0) {
			return Rectangle{}, core.NewGeometryError("rectangle", "half-extent %d must be positive and finite, got %v", axis, half)
		}
	}

	x, y := halfSize.X(), halfSize.Y()
	return Rectangle{
		halfSize: halfSize,
		vertices: [4]mgl64.Vec2{{-x, -y}, {x, -y}, {x, y}, {-x, y}},
	}, nil
}

// HalfSize returns the rectangle's half-extents
func (r Rectangle) HalfSize() mgl64.Vec2 {
	return r.halfSize
}

// CastRayLocal returns the closest edge hit within maxDistance
func (r Rectangle) CastRayLocal(ray core.Ray2, maxDistance float64) (*core.Hit2, bool) {
	return castPolygon(r.vertices[:], ray, maxDistance)
}

func (Rectangle) shape2D() {}
