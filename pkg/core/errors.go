package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is matched by every shape construction failure
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidRay is returned when a ray cannot be constructed
	ErrInvalidRay = errors.New("invalid ray")
)

// GeometryError describes why a shape was rejected
type GeometryError struct {
	Shape  string // Shape kind, e.g. "polygon" or "cuboid"
	Reason string
}

// NewGeometryError creates a GeometryError with a formatted reason
func NewGeometryError(shape, format string, args ...interface{}) *GeometryError {
	return &GeometryError{Shape: shape, Reason: fmt.Sprintf(format, args...)}
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Shape, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidGeometry
func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}
