package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
)

// NewPolygonFromRing creates a polygon from an orb ring.
// A closed ring repeats its first point at the end; the repeat is dropped.
func NewPolygonFromRing(ring orb.Ring) (Polygon, error) {
	points := ring
	if len(points) > 1 && ring.Closed() {
		points = points[:len(points)-1]
	}

	vertices := make([]mgl64.Vec2, len(points))
	for i, point := range points {
		vertices[i] = mgl64.Vec2{point.X(), point.Y()}
	}
	return NewPolygon(vertices...)
}

// Ring returns the polygon as a closed orb ring
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.vertices)+1)
	for _, v := range p.vertices {
		ring = append(ring, orb.Point{v.X(), v.Y()})
	}
	return append(ring, ring[0])
}
