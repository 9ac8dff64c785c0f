package core

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewRay2_NormalizesDirection(t *testing.T) {
	ray, err := NewRay2(mgl64.Vec2{1, 2}, mgl64.Vec2{3, 4})
	if err != nil {
		t.Fatalf("NewRay2 returned error: %v", err)
	}

	const tolerance = 1e-12
	if math.Abs(ray.Direction.Len()-1) > tolerance {
		t.Errorf("Expected unit direction, got length %v", ray.Direction.Len())
	}
	expected := mgl64.Vec2{0.6, 0.8}
	if !ray.Direction.ApproxEqualThreshold(expected, tolerance) {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
	if ray.Origin != (mgl64.Vec2{1, 2}) {
		t.Errorf("Origin should be unchanged, got %v", ray.Origin)
	}
}

func TestNewRay2_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		origin    mgl64.Vec2
		direction mgl64.Vec2
	}{
		{"zero direction", mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}},
		{"NaN direction", mgl64.Vec2{0, 0}, mgl64.Vec2{math.NaN(), 1}},
		{"infinite origin", mgl64.Vec2{math.Inf(1), 0}, mgl64.Vec2{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRay2(tt.origin, tt.direction)
			if !errors.Is(err, ErrInvalidRay) {
				t.Errorf("Expected ErrInvalidRay, got %v", err)
			}
		})
	}
}

func TestNewRay3_Invalid(t *testing.T) {
	if _, err := NewRay3(mgl64.Vec3{}, mgl64.Vec3{}); !errors.Is(err, ErrInvalidRay) {
		t.Errorf("Expected ErrInvalidRay for zero direction, got %v", err)
	}
	if _, err := NewRay3(mgl64.Vec3{0, math.NaN(), 0}, mgl64.Vec3{1, 0, 0}); !errors.Is(err, ErrInvalidRay) {
		t.Errorf("Expected ErrInvalidRay for NaN origin, got %v", err)
	}
}

func TestRay3_At(t *testing.T) {
	ray, err := NewRay3(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -2})
	if err != nil {
		t.Fatalf("NewRay3 returned error: %v", err)
	}

	point := ray.At(4)
	expected := mgl64.Vec3{0, 0, 1}
	if !point.ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}

func TestGeometryError_Is(t *testing.T) {
	err := error(NewGeometryError("polygon", "needs at least 3 vertices, got %d", 2))

	if !errors.Is(err, ErrInvalidGeometry) {
		t.Error("GeometryError should match ErrInvalidGeometry")
	}

	var geomErr *GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatal("errors.As should find *GeometryError")
	}
	if geomErr.Shape != "polygon" {
		t.Errorf("Expected shape 'polygon', got %q", geomErr.Shape)
	}
	if err.Error() != "invalid polygon: needs at least 3 vertices, got 2" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}
