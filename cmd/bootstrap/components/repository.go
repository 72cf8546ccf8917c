package components

import (
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/infra/readstore"
	"cast-dispatch/internal/infra/repository"
	"cast-dispatch/internal/usecase/commands"
	"cast-dispatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,

		// Write side
		fx.Annotate(
			repository.NewAssignmentRepository,
			fx.As(new(commands.AssignmentRepository)),
		),
		fx.Annotate(
			repository.NewCallRequestRepository,
			fx.As(new(commands.CallRequestRepository)),
		),
		fx.Annotate(
			repository.NewCastRepository,
			fx.As(new(commands.CastRepository)),
		),
		fx.Annotate(
			repository.NewMatchRepository,
			fx.As(new(commands.MatchRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewLinkCodeRepository,
			fx.As(new(commands.LinkCodeRepository)),
		),

		// Read side
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
			fx.As(new(commands.RequestReads)),
		),
		fx.Annotate(
			readstore.NewAssignmentReadStore,
			fx.As(new(queries.AssignmentReadStore)),
			fx.As(new(commands.AssignmentReads)),
		),
		fx.Annotate(
			readstore.NewMatchReadStore,
			fx.As(new(queries.MatchReadStore)),
			fx.As(new(commands.MatchReads)),
		),
		fx.Annotate(
			readstore.NewCandidateReadStore,
			fx.As(new(queries.CandidateReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
