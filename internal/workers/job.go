package workers

import (
	"context"
	"sync"
	"time"

	"github.com/junerver/prompt-keeper/internal/logger"
)

// DefaultInterval is used when Start receives a non-positive interval.
const DefaultInterval = 5 * time.Minute

type tickerJob struct {
	name   string
	task   TaskFunc
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJob creates a Job that calls task on a ticker. The job is idle until
// Start is called. Task errors are logged and do not stop the job.
func NewJob(name string, task TaskFunc, log *logger.Logger) Job {
	if log == nil {
		log = logger.Nop()
	}
	return &tickerJob{name: name, task: task, logger: log}
}

// Start implements Job. It stops any previously running goroutine first.
func (j *tickerJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Str("job", j.name).Dur("interval", interval).Msg("job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *tickerJob) tick(ctx context.Context) {
	start := time.Now()
	if err := j.task(ctx); err != nil {
		j.logger.Err(err).Str("job", j.name).Msg("job run failed")
		return
	}
	j.logger.Debug().Str("job", j.name).Dur("took", time.Since(start)).Msg("job run finished")
}

// Stop implements Job.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
