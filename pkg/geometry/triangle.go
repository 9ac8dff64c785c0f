package geometry

import (
	"github.com/df07/go-raycast/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a fixed-size polygon with three vertices
type Triangle struct {
	vertices [3]mgl64.Vec2
}

// NewTriangle creates a triangle from three distinct consecutive vertices
func NewTriangle(v0, v1, v2 mgl64.Vec2) (Triangle, error) {
	t := Triangle{vertices: [3]mgl64.Vec2{v0, v1, v2}}
	if err := validateVertices("triangle", t.vertices[:]); err != nil {
		return Triangle{}, err
	}
	return t, nil
}

// Vertices returns the triangle's vertices
func (t Triangle) Vertices() [3]mgl64.Vec2 {
	return t.vertices
}

// CastRayLocal returns the closest edge hit within maxDistance
func (t Triangle) CastRayLocal(ray core.Ray2, maxDistance float64) (*core.Hit2, bool) {
	return castPolygon(t.vertices[:], ray, maxDistance)
}

func (Triangle) shape2D() {}
