package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GrowPot_Go/internal/logger"
	"github.com/osse101/GrowPot_Go/internal/worker"
)

// Scheduler enqueues jobs on the worker pool at fixed intervals. A tick that
// finds the pool busy is dropped; the garden catches up on the next one.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The ticker starts
// immediately.
func (s *Scheduler) Schedule(interval time.Duration, name string, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.Enqueue(job) {
					logger.FromContext(context.Background()).Debug(LogMsgTickDropped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Every is Schedule for a plain function
func (s *Scheduler) Every(interval time.Duration, name string, fn func(ctx context.Context) error) {
	s.Schedule(interval, name, worker.JobFunc(fn))
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
