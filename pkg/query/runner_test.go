package query

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, format)
}

func compileProbe(t *testing.T) *Query {
	t.Helper()
	doc, err := Load("testdata/probe.yaml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	q, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	return q
}

func TestRunner_Run(t *testing.T) {
	logger := &recordingLogger{}
	report, err := NewRunner(4, logger).Run(context.Background(), compileProbe(t))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if report.Casts != 7 {
		t.Errorf("Expected 7 casts, got %d", report.Casts)
	}
	if report.Hits != 5 {
		t.Errorf("Expected 5 hits, got %d", report.Hits)
	}
	if len(report.Rays) != 3 {
		t.Fatalf("Expected 3 ray reports, got %d", len(report.Rays))
	}
	if len(logger.messages) != 2 {
		t.Errorf("Expected start and finish log lines, got %d", len(logger.messages))
	}

	t.Run("2D ray reports shapes in document order", func(t *testing.T) {
		east := report.Rays[0]
		if east.Ray != "east" {
			t.Fatalf("Expected first report for 'east', got %q", east.Ray)
		}
		expectedShapes := []string{"hull", "lot", "hex", "wedge", "pad"}
		if len(east.Results) != len(expectedShapes) {
			t.Fatalf("Expected %d results, got %d", len(expectedShapes), len(east.Results))
		}
		for i, name := range expectedShapes {
			if east.Results[i].Shape != name {
				t.Errorf("Result %d: expected shape %q, got %q", i, name, east.Results[i].Shape)
			}
		}
		if east.Results[4].Intersection != nil {
			t.Errorf("Ray should pass above 'pad', got %+v", east.Results[4].Intersection)
		}
		if hull := east.Results[0].Intersection; hull == nil || math.Abs(hull.Distance-5) > 1e-9 {
			t.Errorf("Expected 'hull' hit at distance 5, got %+v", hull)
		}
	})

	t.Run("closest hit is the hexagon", func(t *testing.T) {
		closest := report.Rays[0].Closest
		if closest == nil || closest.Shape != "hex" {
			t.Fatalf("Expected closest shape 'hex', got %+v", closest)
		}
		expected := 3 + 1/math.Sqrt(3)
		if math.Abs(closest.Intersection.Distance-expected) > 1e-9 {
			t.Errorf("Expected distance %v, got %v", expected, closest.Intersection.Distance)
		}
	})

	t.Run("3D rays", func(t *testing.T) {
		drop := report.Rays[1]
		if drop.Closest == nil || drop.Closest.Shape != "crate" {
			t.Fatalf("Expected 'drop' to hit 'crate', got %+v", drop.Closest)
		}
		hit := drop.Closest.Intersection
		if hit.Distance != 4 {
			t.Errorf("Expected distance 4, got %v", hit.Distance)
		}
		if !reflect.DeepEqual(hit.Normal, []float64{0, 0, 1}) {
			t.Errorf("Expected normal [0 0 1], got %v", hit.Normal)
		}
		if !reflect.DeepEqual(hit.Position, []float64{0, 0, 1}) {
			t.Errorf("Expected position [0 0 1], got %v", hit.Position)
		}

		short := report.Rays[2]
		if short.Closest != nil {
			t.Errorf("Expected 'short' to be truncated, got %+v", short.Closest)
		}
		if len(short.Results) != 1 || short.Results[0].Intersection != nil {
			t.Errorf("Expected a single miss for 'short', got %+v", short.Results)
		}
	})
}

func TestRunner_DeterministicAcrossWorkerCounts(t *testing.T) {
	q := compileProbe(t)

	baseline, err := NewRunner(1, &recordingLogger{}).Run(context.Background(), q)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, workers := range []int{2, 8, 0} {
		report, err := NewRunner(workers, &recordingLogger{}).Run(context.Background(), q)
		if err != nil {
			t.Fatalf("Run with %d workers returned error: %v", workers, err)
		}
		if !reflect.DeepEqual(baseline, report) {
			t.Errorf("Report with %d workers differs from single-worker report", workers)
		}
	}
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(2, &recordingLogger{}).Run(ctx, compileProbe(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRunner_CancelledAfterStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logging the start line happens after the tasks are built and before any is submitted
	logger := &cancellingLogger{cancel: cancel}
	_, err := NewRunner(1, logger).Run(ctx, compileProbe(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

type cancellingLogger struct {
	cancel context.CancelFunc
}

func (l *cancellingLogger) Printf(format string, args ...interface{}) {
	l.cancel()
}

func TestRunner_EmptyQuery(t *testing.T) {
	report, err := NewRunner(2, &recordingLogger{}).Run(context.Background(), &Query{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Casts != 0 || len(report.Rays) != 0 {
		t.Errorf("Expected an empty report, got %+v", report)
	}
}
