package workers

import (
	"context"
	"time"
)

type scheduled struct {
	job      Job
	interval time.Duration
}

// Workers starts and stops a set of jobs together.
type Workers struct {
	jobs []scheduled
}

// Add schedules job at interval. A non-positive interval leaves the job
// disabled, so optional jobs can be added unconditionally.
func (w *Workers) Add(job Job, interval time.Duration) {
	if job == nil || interval <= 0 {
		return
	}
	w.jobs = append(w.jobs, scheduled{job: job, interval: interval})
}

// Len reports how many jobs are scheduled.
func (w *Workers) Len() int {
	return len(w.jobs)
}

// Start launches every scheduled job in the order it was added.
func (w *Workers) Start(ctx context.Context) {
	for _, s := range w.jobs {
		s.job.Start(ctx, s.interval)
	}
}

// Stop stops every job and waits for them to exit.
func (w *Workers) Stop() {
	for _, s := range w.jobs {
		s.job.Stop()
	}
}
