package repository

import (
	"context"
	"time"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// BindLineIdentity links an external channel identity to an account after a
// successful link-code redemption.
func (r *UserRepository) BindLineIdentity(ctx context.Context, tx db.DBTX, userID int64, lineUserID string, displayName *string, now time.Time) error {
	const q = `
		UPDATE users
		SET line_user_id = $2, line_display_name = $3, line_linked_at = $4, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, userID, lineUserID, displayName, now)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("line identity already bound to another user", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to bind line identity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// UnbindLineIdentity clears the opt-in when the user blocks the channel.
// Idempotent: unknown identities are a no-op.
func (r *UserRepository) UnbindLineIdentity(ctx context.Context, tx db.DBTX, lineUserID string) error {
	const q = `
		UPDATE users
		SET line_linked_at = NULL, updated_at = now()
		WHERE line_user_id = $1`

	if _, err := tx.Exec(ctx, q, lineUserID); err != nil {
		return infra.WrapRepoErr("failed to unbind line identity", err)
	}
	return nil
}
