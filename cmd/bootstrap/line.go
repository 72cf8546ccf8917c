package bootstrap

import (
	"log/slog"

	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/infra/outbox"
	"cast-dispatch/internal/pkg/config"
	"cast-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var LineModule = fx.Module("line",
	fx.Provide(
		fx.Annotate(
			NewLineClient,
			fx.As(new(commands.NotificationGateway)),
		),
		NewOutboxRunner,
	),
)

func NewLineClient(cfg config.Config, logger *slog.Logger) *line.Client {
	return line.NewClient(cfg.Line, logger)
}

func NewOutboxRunner(cfg config.Config) *outbox.Runner {
	return outbox.NewRunner(cfg.Line.PushTimeout)
}
