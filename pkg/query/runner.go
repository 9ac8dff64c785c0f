package query

import (
	"context"
	"time"

	"github.com/df07/go-raycast/pkg/core"
)

// Intersection is the serializable form of a hit
type Intersection struct {
	Distance float64   `json:"distance"`
	Position []float64 `json:"position"`
	Normal   []float64 `json:"normal"`
}

// Result is the outcome of casting one ray against one shape
type Result struct {
	Shape        string        `json:"shape"`
	Intersection *Intersection `json:"intersection,omitempty"` // nil on a miss
}

// RayReport collects every result for a single ray
type RayReport struct {
	Ray     string   `json:"ray"`
	Closest *Result  `json:"closest,omitempty"` // nil when no shape was hit
	Results []Result `json:"results"`
}

// Report is the outcome of a whole query, one entry per ray in document order
type Report struct {
	Rays  []RayReport `json:"rays"`
	Casts int         `json:"casts"`
	Hits  int         `json:"hits"`
}

// Runner casts every ray of a query against every shape of the same dimension
type Runner struct {
	numWorkers int
	logger     core.Logger
}

// NewRunner creates a runner; numWorkers <= 0 uses one worker per CPU
func NewRunner(numWorkers int, logger core.Logger) *Runner {
	if logger == nil {
		logger = &DefaultLogger{}
	}
	return &Runner{numWorkers: numWorkers, logger: logger}
}

// Run executes the query. Output order follows the document regardless of scheduling.
func (r *Runner) Run(ctx context.Context, q *Query) (*Report, error) {
	start := time.Now()
	tasks, owners := buildTasks(q)

	pool := NewWorkerPool(len(tasks), r.numWorkers)
	r.logger.Printf("Casting %d rays against %d shapes (%d casts, %d workers)\n",
		q.NumRays(), q.NumShapes(), len(tasks), pool.GetNumWorkers())

	pool.Start(ctx)
	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}
		pool.SubmitTask(task)
	}
	pool.Stop()

	// Workers skip casts once ctx is done, so the results may be incomplete
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, len(tasks))
	for {
		castResult, ok := pool.GetResult()
		if !ok {
			break
		}
		results[castResult.TaskID] = castResult.Result
	}

	report := assembleReport(q, results, owners)
	r.logger.Printf("Finished %d casts with %d hits in %v\n", report.Casts, report.Hits, time.Since(start))
	return report, nil
}

// rayNames returns the name of each ray in document order
func rayNames(q *Query) []string {
	names := make([]string, q.NumRays())
	for _, ray := range q.Rays2D {
		names[ray.Index] = ray.Name
	}
	for _, ray := range q.Rays3D {
		names[ray.Index] = ray.Name
	}
	return names
}

// buildTasks creates one task per ray/shape pair; owners maps each task to its ray's index
func buildTasks(q *Query) ([]CastTask, []int) {
	var tasks []CastTask
	var owners []int

	for _, ray := range q.Rays2D {
		for _, shape := range q.Shapes2D {
			tasks = append(tasks, CastTask{
				TaskID: len(tasks),
				cast:   func() Result { return cast2D(ray, shape) },
			})
			owners = append(owners, ray.Index)
		}
	}

	for _, ray := range q.Rays3D {
		for _, shape := range q.Shapes3D {
			tasks = append(tasks, CastTask{
				TaskID: len(tasks),
				cast:   func() Result { return cast3D(ray, shape) },
			})
			owners = append(owners, ray.Index)
		}
	}

	return tasks, owners
}

func cast2D(ray Ray2D, shape Shape2D) Result {
	hit, isHit := shape.Shape.CastRayLocal(ray.Ray, ray.MaxDistance)
	if !isHit {
		return Result{Shape: shape.Name}
	}
	return Result{Shape: shape.Name, Intersection: &Intersection{
		Distance: hit.Distance,
		Position: hit.Position[:],
		Normal:   hit.Normal[:],
	}}
}

func cast3D(ray Ray3D, shape Shape3D) Result {
	hit, isHit := shape.Shape.CastRayLocal(ray.Ray, ray.MaxDistance)
	if !isHit {
		return Result{Shape: shape.Name}
	}
	return Result{Shape: shape.Name, Intersection: &Intersection{
		Distance: hit.Distance,
		Position: hit.Position[:],
		Normal:   hit.Normal[:],
	}}
}

func assembleReport(q *Query, results []Result, owners []int) *Report {
	report := &Report{Rays: make([]RayReport, q.NumRays())}
	for i, name := range rayNames(q) {
		report.Rays[i] = RayReport{Ray: name, Results: []Result{}}
	}

	for taskID, result := range results {
		rayReport := &report.Rays[owners[taskID]]
		rayReport.Results = append(rayReport.Results, result)
		report.Casts++

		if result.Intersection == nil {
			continue
		}
		report.Hits++
		// Strict comparison keeps the first shape on exact ties
		if rayReport.Closest == nil || result.Intersection.Distance < rayReport.Closest.Intersection.Distance {
			closest := result
			rayReport.Closest = &closest
		}
	}

	return report
}
