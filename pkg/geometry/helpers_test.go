package geometry

import (
	"testing"

	"github.com/df07/go-raycast/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func mustRay2(t *testing.T, origin, direction mgl64.Vec2) core.Ray2 {
	t.Helper()
	ray, err := core.NewRay2(origin, direction)
	if err != nil {
		t.Fatalf("NewRay2(%v, %v): %v", origin, direction, err)
	}
	return ray
}

func mustRay3(t *testing.T, origin, direction mgl64.Vec3) core.Ray3 {
	t.Helper()
	ray, err := core.NewRay3(origin, direction)
	if err != nil {
		t.Fatalf("NewRay3(%v, %v): %v", origin, direction, err)
	}
	return ray
}

func mustPolygon(t *testing.T, vertices ...mgl64.Vec2) Polygon {
	t.Helper()
	polygon, err := NewPolygon(vertices...)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return polygon
}

// checkHit2 verifies position == origin + distance*direction and a unit normal
func checkHit2(t *testing.T, ray core.Ray2, hit *core.Hit2, maxDistance float64) {
	t.Helper()
	if hit.Distance < 0 || hit.Distance > maxDistance {
		t.Errorf("Distance %v outside [0, %v]", hit.Distance, maxDistance)
	}
	if !hit.Position.ApproxEqualThreshold(ray.At(hit.Distance), tolerance) {
		t.Errorf("Position %v does not lie at distance %v along the ray (%v)", hit.Position, hit.Distance, ray.At(hit.Distance))
	}
	if d := hit.Normal.Len() - 1; d > tolerance || d < -tolerance {
		t.Errorf("Normal %v is not unit length", hit.Normal)
	}
}

func checkHit3(t *testing.T, ray core.Ray3, hit *core.Hit3, maxDistance float64) {
	t.Helper()
	if hit.Distance < 0 || hit.Distance > maxDistance {
		t.Errorf("Distance %v outside [0, %v]", hit.Distance, maxDistance)
	}
	if !hit.Position.ApproxEqualThreshold(ray.At(hit.Distance), tolerance) {
		t.Errorf("Position %v does not lie at distance %v along the ray", hit.Position, hit.Distance)
	}
	if d := hit.Normal.Len() - 1; d > tolerance || d < -tolerance {
		t.Errorf("Normal %v is not unit length", hit.Normal)
	}
}
