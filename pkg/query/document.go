package query

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Document is a batch of rays to cast against a set of shapes.
// JSON documents are accepted since JSON is a subset of YAML.
type Document struct {
	MaxDistance *float64    `yaml:"maxDistance" validate:"omitempty,gte=0"`
	Shapes      []ShapeSpec `yaml:"shapes" validate:"required,min=1,unique=Name,dive"`
	Rays        []RaySpec   `yaml:"rays" validate:"required,min=1,unique=Name,dive"`
}

// ShapeSpec describes one shape. Which fields apply depends on Kind.
type ShapeSpec struct {
	Name        string      `yaml:"name" validate:"required"`
	Kind        string      `yaml:"kind" validate:"required,oneof=polygon triangle rectangle regular cuboid"`
	Vertices    [][]float64 `yaml:"vertices" validate:"omitempty,dive,len=2"` // polygon, triangle
	GeoJSON     string      `yaml:"geojson" validate:"omitempty,json"`        // polygon
	HalfExtents []float64   `yaml:"halfExtents" validate:"omitempty,min=2,max=3"`
	Sides       int         `yaml:"sides" validate:"omitempty,gte=0,lte=65536"` // geometry.MaxRegularPolygonSides
	Radius      float64     `yaml:"radius"`
}

// RaySpec describes one ray; two coordinates make a 2D ray, three a 3D ray
type RaySpec struct {
	Name        string    `yaml:"name" validate:"required"`
	Origin      []float64 `yaml:"origin" validate:"required,min=2,max=3"`
	Direction   []float64 `yaml:"direction" validate:"required,min=2,max=3"`
	MaxDistance *float64  `yaml:"maxDistance" validate:"omitempty,gte=0"`
}

var validate = validator.New()

// Parse decodes and validates a query document
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode query document: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid query document: %w", err)
	}
	return &doc, nil
}

// Load reads and parses a query document from disk
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query document: %w", err)
	}
	return Parse(data)
}
