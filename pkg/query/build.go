package query

import (
	"fmt"
	"math"

	"github.com/df07/go-raycast/pkg/core"
	"github.com/df07/go-raycast/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Shape2D is a named 2D shape ready for casting
type Shape2D struct {
	Name  string
	Shape geometry.RayCaster2D
}

// Shape3D is a named 3D shape ready for casting
type Shape3D struct {
	Name  string
	Shape geometry.RayCaster3D
}

// Ray2D is a named 2D ray with its resolved distance limit
type Ray2D struct {
	Index       int // Position in the document's ray list
	Name        string
	Ray         core.Ray2
	MaxDistance float64
}

// Ray3D is a named 3D ray with its resolved distance limit
type Ray3D struct {
	Index       int
	Name        string
	Ray         core.Ray3
	MaxDistance float64
}

// Query is a compiled document: validated shapes and rays grouped by dimension
type Query struct {
	Shapes2D []Shape2D
	Shapes3D []Shape3D
	Rays2D   []Ray2D
	Rays3D   []Ray3D
}

// MaxCasts bounds the number of ray/shape pairs a single query may run
const MaxCasts = 1 << 20

// Compile constructs every shape and ray in the document.
// The first invalid shape or ray fails the whole query.
func Compile(doc *Document) (*Query, error) {
	q := &Query{}

	for _, spec := range doc.Shapes {
		if err := q.addShape(spec); err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec.Name, err)
		}
	}

	defaultMax := math.Inf(1)
	if doc.MaxDistance != nil {
		defaultMax = *doc.MaxDistance
	}
	for _, spec := range doc.Rays {
		if err := q.addRay(spec, defaultMax); err != nil {
			return nil, fmt.Errorf("ray %q: %w", spec.Name, err)
		}
	}

	if casts := q.NumCasts(); casts > MaxCasts {
		return nil, fmt.Errorf("query needs %d casts, limit is %d", casts, MaxCasts)
	}

	return q, nil
}

func (q *Query) addShape(spec ShapeSpec) error {
	switch spec.Kind {
	case "polygon":
		polygon, err := buildPolygon(spec)
		if err != nil {
			return err
		}
		q.Shapes2D = append(q.Shapes2D, Shape2D{Name: spec.Name, Shape: polygon})

	case "triangle":
		if len(spec.Vertices) != 3 {
			return fmt.Errorf("triangle needs exactly 3 vertices, got %d", len(spec.Vertices))
		}
		v, err := toVec2s(spec.Vertices)
		if err != nil {
			return err
		}
		triangle, err := geometry.NewTriangle(v[0], v[1], v[2])
		if err != nil {
			return err
		}
		q.Shapes2D = append(q.Shapes2D, Shape2D{Name: spec.Name, Shape: triangle})

	case "rectangle":
		if len(spec.HalfExtents) != 2 {
			return fmt.Errorf("rectangle needs 2 half-extents, got %d", len(spec.HalfExtents))
		}
		rectangle, err := geometry.NewRectangle(mgl64.Vec2{spec.HalfExtents[0], spec.HalfExtents[1]})
		if err != nil {
			return err
		}
		q.Shapes2D = append(q.Shapes2D, Shape2D{Name: spec.Name, Shape: rectangle})

	case "regular":
		regular, err := geometry.NewRegularPolygon(spec.Sides, spec.Radius)
		if err != nil {
			return err
		}
		q.Shapes2D = append(q.Shapes2D, Shape2D{Name: spec.Name, Shape: regular})

	case "cuboid":
		if len(spec.HalfExtents) != 3 {
			return fmt.Errorf("cuboid needs 3 half-extents, got %d", len(spec.HalfExtents))
		}
		cuboid, err := geometry.NewCuboid(mgl64.Vec3{spec.HalfExtents[0], spec.HalfExtents[1], spec.HalfExtents[2]})
		if err != nil {
			return err
		}
		q.Shapes3D = append(q.Shapes3D, Shape3D{Name: spec.Name, Shape: cuboid})

	default:
		return fmt.Errorf("unknown shape kind %q", spec.Kind)
	}
	return nil
}

// buildPolygon accepts either explicit vertices or a GeoJSON Polygon/LineString geometry
func buildPolygon(spec ShapeSpec) (geometry.Polygon, error) {
	if spec.GeoJSON == "" {
		vertices, err := toVec2s(spec.Vertices)
		if err != nil {
			return geometry.Polygon{}, err
		}
		return geometry.NewPolygon(vertices...)
	}
	if len(spec.Vertices) > 0 {
		return geometry.Polygon{}, fmt.Errorf("polygon takes either vertices or geojson, not both")
	}

	g, err := geojson.UnmarshalGeometry([]byte(spec.GeoJSON))
	if err != nil {
		return geometry.Polygon{}, fmt.Errorf("failed to decode geojson: %w", err)
	}

	switch geom := g.Geometry().(type) {
	case orb.Polygon:
		if len(geom) != 1 {
			return geometry.Polygon{}, fmt.Errorf("geojson polygon must have exactly one ring, got %d", len(geom))
		}
		return geometry.NewPolygonFromRing(geom[0])
	case orb.LineString:
		return geometry.NewPolygonFromRing(orb.Ring(geom))
	default:
		return geometry.Polygon{}, fmt.Errorf("unsupported geojson geometry %s", g.Type)
	}
}

func (q *Query) addRay(spec RaySpec, defaultMax float64) error {
	if len(spec.Origin) != len(spec.Direction) {
		return fmt.Errorf("origin has %d coordinates but direction has %d", len(spec.Origin), len(spec.Direction))
	}

	maxDistance := defaultMax
	if spec.MaxDistance != nil {
		maxDistance = *spec.MaxDistance
	}
	index := q.NumRays()

	switch len(spec.Origin) {
	case 2:
		ray, err := core.NewRay2(
			mgl64.Vec2{spec.Origin[0], spec.Origin[1]},
			mgl64.Vec2{spec.Direction[0], spec.Direction[1]},
		)
		if err != nil {
			return err
		}
		q.Rays2D = append(q.Rays2D, Ray2D{Index: index, Name: spec.Name, Ray: ray, MaxDistance: maxDistance})
	case 3:
		ray, err := core.NewRay3(
			mgl64.Vec3{spec.Origin[0], spec.Origin[1], spec.Origin[2]},
			mgl64.Vec3{spec.Direction[0], spec.Direction[1], spec.Direction[2]},
		)
		if err != nil {
			return err
		}
		q.Rays3D = append(q.Rays3D, Ray3D{Index: index, Name: spec.Name, Ray: ray, MaxDistance: maxDistance})
	default:
		return fmt.Errorf("rays need 2 or 3 coordinates, got %d", len(spec.Origin))
	}
	return nil
}

// NumRays returns the number of rays of either dimension
func (q *Query) NumRays() int {
	return len(q.Rays2D) + len(q.Rays3D)
}

// NumShapes returns the number of shapes of either dimension
func (q *Query) NumShapes() int {
	return len(q.Shapes2D) + len(q.Shapes3D)
}

// NumCasts returns the number of ray/shape pairs of matching dimension
func (q *Query) NumCasts() int {
	return len(q.Rays2D)*len(q.Shapes2D) + len(q.Rays3D)*len(q.Shapes3D)
}

func toVec2s(points [][]float64) ([]mgl64.Vec2, error) {
	vertices := make([]mgl64.Vec2, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("vertex %d needs 2 coordinates, got %d", i, len(p))
		}
		vertices[i] = mgl64.Vec2{p[0], p[1]}
	}
	return vertices, nil
}
