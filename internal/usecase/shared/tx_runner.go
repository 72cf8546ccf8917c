package shared

import (
	"context"

	"cast-dispatch/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTxRunner adapts the pool-backed retry helpers to a non-generic interface
// that usecases can depend on and tests can replace.
type PgxTxRunner struct {
	pool *pgxpool.Pool
}

func NewPgxTxRunner(pool *pgxpool.Pool) *PgxTxRunner {
	return &PgxTxRunner{pool: pool}
}

func (r *PgxTxRunner) InTx(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}
