package scheduler

import (
	"context"
	"log/slog"
	"time"

	"cast-dispatch/internal/pkg/clock"
)

// ReminderHandler fires one reminder. A nil return acks the task; returning
// an error leaves it scheduled for redelivery on a later poll.
type ReminderHandler interface {
	HandleReminder(ctx context.Context, matchID int64) error
}

// Worker polls the scheduled set and dispatches due reminders. It runs as a
// single goroutine decoupled from the requests that created the tasks.
type Worker struct {
	sched    *ReminderScheduler
	handler  ReminderHandler
	clock    clock.Clock
	interval time.Duration
	batch    int64
	logger   *slog.Logger
}

func NewWorker(sched *ReminderScheduler, handler ReminderHandler, clk clock.Clock, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		sched:    sched,
		handler:  handler,
		clock:    clk,
		interval: 15 * time.Second,
		batch:    50,
		logger:   logger,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick processes one polling round. Exposed for tests.
func (w *Worker) Tick(ctx context.Context) {
	due, err := w.sched.Due(ctx, w.clock.Now(), w.batch)
	if err != nil {
		w.logger.Error("failed to poll due reminders", "error", err)
		return
	}

	for _, matchID := range due {
		if err := w.handler.HandleReminder(ctx, matchID); err != nil {
			w.logger.Warn("reminder handler failed; will redeliver",
				"match_id", matchID, "error", err)
			continue
		}
		if err := w.sched.Ack(ctx, matchID); err != nil {
			w.logger.Warn("failed to ack reminder", "match_id", matchID, "error", err)
		}
	}
}
