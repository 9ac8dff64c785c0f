package geometry

import (
	"github.com/df07/go-raycast/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is a closed polygon with a runtime-sized vertex list.
// The last vertex connects back to the first.
type Polygon struct {
	vertices []mgl64.Vec2
}

// NewPolygon creates a polygon from at least 3 vertices with no zero-length edge
func NewPolygon(vertices ...mgl64.Vec2) (Polygon, error) {
	if err := validateVertices("polygon", vertices); err != nil {
		return Polygon{}, err
	}
	return Polygon{vertices: append([]mgl64.Vec2(nil), vertices...)}, nil
}

// Vertices returns a copy of the polygon's vertices
func (p Polygon) Vertices() []mgl64.Vec2 {
	return append([]mgl64.Vec2(nil), p.vertices...)
}

// CastRayLocal returns the closest edge hit within maxDistance
func (p Polygon) CastRayLocal(ray core.Ray2, maxDistance float64) (*core.Hit2, bool) {
	return castPolygon(p.vertices, ray, maxDistance)
}

func (Polygon) shape2D() {}

// validateVertices checks the invariants castPolygon relies on
func validateVertices(shape string, vertices []mgl64.Vec2) error {
	if len(vertices) < 3 {
		return core.NewGeometryError(shape, "needs at least 3 vertices, got %d", len(vertices))
	}
	for i, start := range vertices {
		end := vertices[(i+1)%len(vertices)]
		if _, _, err := NewSegment(start, end); err != nil {
			return core.NewGeometryError(shape, "degenerate edge %d from %v to %v", i, start, end)
		}
	}
	return nil
}

// castPolygon casts against every edge and keeps the closest hit.
// Vertices must have passed validateVertices.
func castPolygon(vertices []mgl64.Vec2, ray core.Ray2, maxDistance float64) (*core.Hit2, bool) {
	var closest *core.Hit2

	for i, start := range vertices {
		end := vertices[(i+1)%len(vertices)]
		center := start.Add(end).Mul(0.5)

		hit, isHit := segmentBetween(start, end).CastRay(center, ray, maxDistance)
		if !isHit {
			continue
		}
		// Strict comparison keeps the first edge on exact ties
		if closest == nil || hit.Distance < closest.Distance {
			closest = hit
		}
	}

	return closest, closest != nil
}
