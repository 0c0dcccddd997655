// Package workers runs periodic background jobs for the serve command:
// re-publishing backend prompts and taking scheduled snapshots.
package workers

import (
	"context"
	"time"
)

// Job is a ticker-driven background task.
//
// Start launches the task in its own goroutine and returns immediately;
// the task fires once per interval until ctx is cancelled or Stop is called.
// Stop blocks until the goroutine has exited and is a no-op on an idle job.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// TaskFunc is the unit of work a [Job] runs on every tick.
type TaskFunc func(ctx context.Context) error
