// Package scheduler runs recurring jobs, like the background market
// tick, on a fixed interval through the worker pool.
package scheduler

import (
	"sync"
	"time"

	"github.com/dmaas/DumpsterBot_Go/internal/worker"
)

// Scheduler enqueues registered jobs at their interval until stopped.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run
// happens one interval after registration.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for the tickers to exit.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
