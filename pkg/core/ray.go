package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray2 represents a 2D ray with an origin and a unit direction
type Ray2 struct {
	Origin    mgl64.Vec2
	Direction mgl64.Vec2
}

// NewRay2 creates a 2D ray, normalizing the direction.
// A zero-length or non-finite direction is rejected with ErrInvalidRay.
func NewRay2(origin, direction mgl64.Vec2) (Ray2, error) {
	if !finite(origin[:]...) || !finite(direction[:]...) {
		return Ray2{}, fmt.Errorf("%w: non-finite origin %v or direction %v", ErrInvalidRay, origin, direction)
	}
	length := direction.Len()
	if length == 0 {
		return Ray2{}, fmt.Errorf("%w: zero-length direction", ErrInvalidRay)
	}
	return Ray2{Origin: origin, Direction: direction.Mul(1 / length)}, nil
}

// At returns the point at distance t along the ray
func (r Ray2) At(t float64) mgl64.Vec2 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Ray3 represents a 3D ray with an origin and a unit direction
type Ray3 struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay3 creates a 3D ray, normalizing the direction.
// A zero-length or non-finite direction is rejected with ErrInvalidRay.
func NewRay3(origin, direction mgl64.Vec3) (Ray3, error) {
	if !finite(origin[:]...) || !finite(direction[:]...) {
		return Ray3{}, fmt.Errorf("%w: non-finite origin %v or direction %v", ErrInvalidRay, origin, direction)
	}
	length := direction.Len()
	if length == 0 {
		return Ray3{}, fmt.Errorf("%w: zero-length direction", ErrInvalidRay)
	}
	return Ray3{Origin: origin, Direction: direction.Mul(1 / length)}, nil
}

// At returns the point at distance t along the ray
func (r Ray3) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
