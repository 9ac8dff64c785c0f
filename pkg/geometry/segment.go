package geometry

import (
	"math"

	"github.com/df07/go-raycast/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Segment is a finite line segment centered on a point supplied at cast time
type Segment struct {
	Direction  mgl64.Vec2 // Unit direction from the start point to the end point
	HalfLength float64
}

// NewSegment creates the segment running from start to end and returns it with its midpoint.
// Coincident or non-finite endpoints have no direction and are rejected.
func NewSegment(start, end mgl64.Vec2) (Segment, mgl64.Vec2, error) {
	edge := end.Sub(start)
	length := edge.Len()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Segment{}, mgl64.Vec2{}, core.NewGeometryError("segment", "degenerate edge from %v to %v", start, end)
	}
	return segmentBetween(start, end), start.Add(end).Mul(0.5), nil
}

// segmentBetween skips validation; callers guarantee start and end are distinct
func segmentBetween(start, end mgl64.Vec2) Segment {
	edge := end.Sub(start)
	length := edge.Len()
	return Segment{Direction: edge.Mul(1 / length), HalfLength: length / 2}
}

// CastRay intersects the segment centered at center with the ray.
// A ray parallel to the segment never hits it, even when collinear.
func (s Segment) CastRay(center mgl64.Vec2, ray core.Ray2, maxDistance float64) (*core.Hit2, bool) {
	denominator := cross2(ray.Direction, s.Direction)
	if denominator == 0 {
		return nil, false
	}

	// Solve origin + t*direction = center + u*segmentDirection
	toCenter := center.Sub(ray.Origin)
	t := cross2(toCenter, s.Direction) / denominator
	if t < 0 || t > maxDistance {
		return nil, false
	}
	u := cross2(toCenter, ray.Direction) / denominator
	if math.Abs(u) > s.HalfLength {
		return nil, false
	}

	// Normal faces back towards the incoming ray
	normal := mgl64.Vec2{-s.Direction.Y(), s.Direction.X()}
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Mul(-1)
	}

	return &core.Hit2{
		Position: ray.At(t),
		Normal:   normal,
		Distance: t,
	}, true
}

// cross2 returns the z component of the 3D cross product of a and b
func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
