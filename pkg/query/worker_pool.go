package query

import (
	"context"
	"runtime"
	"sync"
)

// CastTask is a single ray/shape cast for the worker pool
type CastTask struct {
	TaskID int // For deterministic ordering
	cast   func() Result
}

// CastResult contains the result of one cast
type CastResult struct {
	TaskID int
	Result Result
}

// WorkerPool runs casts in parallel
type WorkerPool struct {
	taskQueue   chan CastTask
	resultQueue chan CastResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker executes cast tasks from the shared queue
type Worker struct {
	ID          int
	taskQueue   chan CastTask
	resultQueue chan CastResult
}

// NewWorkerPool creates a worker pool able to buffer maxTasks tasks and results
func NewWorkerPool(maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan CastTask, maxTasks),
		resultQueue: make(chan CastResult, maxTasks), // Workers never block on results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Once ctx is done, queued tasks are drained without being cast.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop waits for submitted tasks to finish and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a cast task
func (wp *WorkerPool) SubmitTask(task CastTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed cast; ok is false once the pool is stopped and drained
func (wp *WorkerPool) GetResult() (CastResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if ctx.Err() != nil {
			continue
		}
		w.resultQueue <- CastResult{
			TaskID: task.TaskID,
			Result: task.cast(),
		}
	}
}
