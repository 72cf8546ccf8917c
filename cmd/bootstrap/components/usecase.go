package components

import (
	"cast-dispatch/internal/infra/outbox"
	"cast-dispatch/internal/infra/scheduler"
	"cast-dispatch/internal/pkg/clock"
	"cast-dispatch/internal/pkg/config"
	"cast-dispatch/internal/usecase/commands"
	"cast-dispatch/internal/usecase/queries"
	"cast-dispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(s *scheduler.ReminderScheduler) *scheduler.ReminderScheduler { return s },
		fx.As(new(commands.ReminderScheduler)),
	),
	fx.Annotate(
		shared.NewPgxTxRunner,
		fx.As(new(commands.TxRunner)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAssignmentCommands,
		NewMatchCommands,
		commands.NewWebhookCommands,
		commands.NewReminderCommands,
		NewLinkCodeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCandidateQueries,
		queries.NewRequestQueries,
		queries.NewAssignmentQueries,
		queries.NewMatchQueries,
	),
)

func NewMatchCommands(
	matchRepo commands.MatchRepository,
	castRepo commands.CastRepository,
	matchReads commands.MatchReads,
	gateway commands.NotificationGateway,
	sched commands.ReminderScheduler,
	runner *outbox.Runner,
	pool *pgxpool.Pool,
	clk clock.Clock,
	cfg config.Config,
) commands.MatchCommands {
	return commands.NewMatchCommands(matchRepo, castRepo, matchReads, gateway, sched, runner, pool, clk, cfg.Line.AdminUserID)
}

func NewLinkCodeCommands(
	linkCodeRepo commands.LinkCodeRepository,
	pool *pgxpool.Pool,
	clk clock.Clock,
	cfg config.Config,
) commands.LinkCodeCommands {
	return commands.NewLinkCodeCommands(linkCodeRepo, pool, clk, cfg.Line.LinkCodeTTL)
}
