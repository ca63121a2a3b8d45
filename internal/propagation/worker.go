package propagation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anordal/celestia/internal/orbit"
)

// evaluateJob is a unit of work for the worker pool.
type evaluateJob struct {
	name  string
	orbit orbit.Orbit
}

// evaluateResult is the output of a single body evaluation.
type evaluateResult struct {
	position BodyPosition
	err      error
}

// WorkerPool manages a fixed number of goroutines for parallel orbit
// evaluation.
type WorkerPool struct {
	workers int
	logger  *slog.Logger
}

// NewWorkerPool creates a worker pool with the given number of workers.
func NewWorkerPool(workers int, logger *slog.Logger) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		workers: workers,
		logger:  logger,
	}
}

// Workers returns the pool size.
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// EvaluateBatch evaluates every job at jd. Bodies whose position is not
// finite are logged and skipped. Results are in completion order.
func (wp *WorkerPool) EvaluateBatch(ctx context.Context, jobs []evaluateJob, jd float64) ([]BodyPosition, int, int) {
	if len(jobs) == 0 {
		return nil, 0, 0
	}

	jobCh := make(chan evaluateJob, wp.workers*2)
	results := make(chan evaluateResult, wp.workers*2)

	// Start workers.
	var wg sync.WaitGroup
	for i := 0; i < wp.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				if ctx.Err() != nil {
					return
				}
				select {
				case results <- evaluateSingle(job, jd):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed jobs in a goroutine.
	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobCh <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Close results when all workers are done.
	go func() {
		wg.Wait()
		close(results)
	}()

	positions := make([]BodyPosition, 0, len(jobs))
	var successCount, errorCount int

	for result := range results {
		if result.err != nil {
			errorCount++
			wp.logger.Warn("orbit evaluation failed",
				"body", result.position.Name,
				"jd", jd,
				"error", result.err,
			)
			continue
		}
		successCount++
		positions = append(positions, result.position)
	}

	return positions, successCount, errorCount
}

func evaluateSingle(job evaluateJob, jd float64) evaluateResult {
	p := job.orbit.Position(jd)
	res := evaluateResult{position: BodyPosition{Name: job.name, Position: p}}
	if !p.IsFinite() {
		res.err = fmt.Errorf("non-finite position %v", p.Array())
	}
	return res
}
