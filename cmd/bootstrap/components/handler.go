package components

import (
	"cast-dispatch/internal/handler"
	"cast-dispatch/internal/handler/api"
	"cast-dispatch/internal/handler/middleware"
	"cast-dispatch/internal/pkg/config"
	"cast-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewAssignmentHandler,
		api.NewMatchHandler,
		api.NewLinkCodeHandler,
		NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewWebhookHandler(webhookCmds commands.WebhookCommands, cfg config.Config) *api.WebhookHandler {
	return api.NewWebhookHandler(webhookCmds, cfg.Line)
}
