// Package outbox runs post-commit continuations. A command collects hooks
// while its transaction is open; the runner executes them only after the
// commit succeeded. Hook failures are logged and never reach the caller, so
// a notification problem cannot corrupt committed state and a failed
// transaction never triggers a notification.
package outbox

import (
	"context"
	"log/slog"
	"time"
)

type Hook func(ctx context.Context)

// Queue accumulates hooks for a single transaction. Not safe for concurrent
// use; each command builds its own.
type Queue struct {
	hooks []Hook
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Add(h Hook) {
	if h == nil {
		return
	}
	q.hooks = append(q.hooks, h)
}

func (q *Queue) Len() int {
	return len(q.hooks)
}

// Reset drops everything accumulated so far. Retried transactions call it at
// the top of each attempt so hooks from a rolled-back attempt never fire.
func (q *Queue) Reset() {
	q.hooks = nil
}

type Runner struct {
	timeout time.Duration
}

func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Runner{timeout: timeout}
}

// RunAfterCommit fires the queued hooks asynchronously relative to the
// caller. The triggering request does not wait for slow sends.
func (r *Runner) RunAfterCommit(q *Queue) {
	if q == nil || len(q.hooks) == 0 {
		return
	}
	hooks := q.hooks
	q.hooks = nil

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		for _, h := range hooks {
			r.runOne(ctx, h)
		}
	}()
}

// RunSync executes hooks on the calling goroutine; used by tests and the
// scheduler worker, which already runs off the request path.
func (r *Runner) RunSync(ctx context.Context, q *Queue) {
	if q == nil {
		return
	}
	hooks := q.hooks
	q.hooks = nil
	for _, h := range hooks {
		r.runOne(ctx, h)
	}
}

func (r *Runner) runOne(ctx context.Context, h Hook) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("recovered from panic in post-commit hook", "panic", rec)
		}
	}()
	h(ctx)
}
