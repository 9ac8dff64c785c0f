package geometry

import (
	"math"

	"github.com/df07/go-raycast/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Cuboid is an axis-aligned box centered at the local origin.
// Rays must already be expressed in the box's local frame.
type Cuboid struct {
	halfSize mgl64.Vec3
}

// NewCuboid creates a cuboid from its half-extents
func NewCuboid(halfSize mgl64.Vec3) (Cuboid, error) {
	for axis, half := range halfSize {
		if !(half > 0) || math.IsInf(half, 0) {
			return Cuboid{}, core.NewGeometryError("cuboid", "half-extent %d must be positive and finite, got %v", axis, half)
		}
	}
	return Cuboid{halfSize: halfSize}, nil
}

// NewCuboidFromSize creates a cuboid from its full edge lengths
func NewCuboidFromSize(xLength, yLength, zLength float64) (Cuboid, error) {
	return NewCuboid(mgl64.Vec3{xLength / 2, yLength / 2, zLength / 2})
}

// HalfSize returns the cuboid's half-extents
func (c Cuboid) HalfSize() mgl64.Vec3 {
	return c.halfSize
}

// slabFace identifies one of the six faces: an axis and the sign of its outward normal
type slabFace struct {
	axis int
	sign float64
}

// CastRayLocal intersects the ray with the box using the slab method.
// A ray starting inside the box reports the face it exits through.
func (c Cuboid) CastRayLocal(ray core.Ray3, maxDistance float64) (*core.Hit3, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	var entry, exit slabFace

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		direction := ray.Direction[axis]
		half := c.halfSize[axis]

		// Parallel to this slab: either always inside it or never
		if direction == 0 {
			if origin < -half || origin > half {
				return nil, false
			}
			continue
		}

		tLo := (-half - origin) / direction
		tHi := (half - origin) / direction

		tNear, tFar := tLo, tHi
		near, far := slabFace{axis, -1}, slabFace{axis, 1}
		if tLo > tHi {
			tNear, tFar = tHi, tLo
			near, far = far, near
		}

		// Strict comparisons keep the earliest axis on ties
		if tNear > tMin {
			tMin, entry = tNear, near
		}
		if tFar < tMax {
			tMax, exit = tFar, far
		}
	}

	if tMax < 0 || tMin > tMax {
		return nil, false
	}

	t, face := tMin, entry
	if tMin < 0 {
		t, face = tMax, exit
	}
	if t > maxDistance {
		return nil, false
	}

	var normal mgl64.Vec3
	normal[face.axis] = face.sign

	return &core.Hit3{
		Position: ray.At(t),
		Normal:   normal,
		Distance: t,
	}, true
}

func (Cuboid) shape3D() {}
