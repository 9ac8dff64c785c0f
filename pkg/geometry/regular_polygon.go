package geometry

import (
	"math"

	"github.com/df07/go-raycast/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxRegularPolygonSides bounds the vertex list generated for every cast
const MaxRegularPolygonSides = 1 << 16

// RegularPolygon is a polygon with equal edges inscribed in a circle.
// Its vertices are generated on demand.
type RegularPolygon struct {
	sides  int
	radius float64
}

// NewRegularPolygon creates a regular polygon with 3 to MaxRegularPolygonSides sides and a positive radius
func NewRegularPolygon(sides int, radius float64) (RegularPolygon, error) {
	if sides < 3 || sides > MaxRegularPolygonSides {
		return RegularPolygon{}, core.NewGeometryError("regular polygon", "sides must be between 3 and %d, got %d", MaxRegularPolygonSides, sides)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return RegularPolygon{}, core.NewGeometryError("regular polygon", "radius must be positive and finite, got %v", radius)
	}

	p := RegularPolygon{sides: sides, radius: radius}
	// Very dense polygons with a tiny radius can round adjacent vertices together
	if err := validateVertices("regular polygon", p.Vertices()); err != nil {
		return RegularPolygon{}, err
	}
	return p, nil
}

// Sides returns the number of edges
func (p RegularPolygon) Sides() int {
	return p.sides
}

// Radius returns the circumradius
func (p RegularPolygon) Radius() float64 {
	return p.radius
}

// Vertices returns the counter-clockwise vertices, the first on the positive X axis
func (p RegularPolygon) Vertices() []mgl64.Vec2 {
	vertices := make([]mgl64.Vec2, p.sides)
	step := 2 * math.Pi / float64(p.sides)
	for k := range vertices {
		theta := float64(k) * step
		vertices[k] = mgl64.Vec2{p.radius * math.Cos(theta), p.radius * math.Sin(theta)}
	}
	return vertices
}

// CastRayLocal generates the vertices and casts against them as a polygon
func (p RegularPolygon) CastRayLocal(ray core.Ray2, maxDistance float64) (*core.Hit2, bool) {
	return castPolygon(p.Vertices(), ray, maxDistance)
}

func (RegularPolygon) shape2D() {}
