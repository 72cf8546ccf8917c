package components

import (
	"context"
	"log/slog"

	"cast-dispatch/internal/infra/scheduler"
	"cast-dispatch/internal/pkg/clock"
	"cast-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReminderWorker,
	),
	fx.Invoke(startReminderWorker),
)

func NewReminderWorker(
	sched *scheduler.ReminderScheduler,
	reminderCmds commands.ReminderCommands,
	clk clock.Clock,
	logger *slog.Logger,
) *scheduler.Worker {
	return scheduler.NewWorker(sched, reminderCmds, clk, logger)
}

func startReminderWorker(lc fx.Lifecycle, worker *scheduler.Worker, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("リマインダーワーカーを起動します")
			go worker.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
