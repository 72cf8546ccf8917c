package repository

import (
	"context"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/pkg/pgconv"
	"cast-dispatch/internal/usecase/commands"
)

type CastRepository struct{}

func NewCastRepository() *CastRepository {
	return &CastRepository{}
}

// FindProfile loads the cast together with its linked channel identity, the
// data an invite needs inside its transaction.
func (r *CastRepository) FindProfile(ctx context.Context, tx db.DBTX, castID int64) (*commands.CastProfile, error) {
	const q = `
		SELECT c.id, c.nickname, u.line_user_id
		FROM casts c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`

	var p commands.CastProfile
	err := tx.QueryRow(ctx, q, castID).Scan(&p.ID, &p.Nickname, &p.LineUserID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cast not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cast profile", err)
	}
	return &p, nil
}
