package repository

import (
	"context"
	"time"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
)

type LinkCodeRepository struct{}

func NewLinkCodeRepository() *LinkCodeRepository {
	return &LinkCodeRepository{}
}

// Issue invalidates the user's outstanding unused codes and stores a fresh
// one. Only the newest code can redeem.
func (r *LinkCodeRepository) Issue(ctx context.Context, tx db.DBTX, userID int64, code string, expiresAt time.Time) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM line_link_codes WHERE user_id = $1 AND used_at IS NULL`, userID); err != nil {
		return infra.WrapRepoErr("failed to invalidate old link codes", err)
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO line_link_codes (user_id, code, expires_at) VALUES ($1, $2, $3)`,
		userID, code, expiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("link code collision", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("unknown user for link code", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to issue link code", err)
	}
	return nil
}

// Redeem consumes an unused, unexpired code in one statement and returns the
// owning user. ok=false covers unknown, used and expired alike; a used or
// expired code is a user-visible rejection upstream, not an error.
func (r *LinkCodeRepository) Redeem(ctx context.Context, tx db.DBTX, code string, now time.Time) (int64, bool, error) {
	const q = `
		UPDATE line_link_codes
		SET used_at = $2
		WHERE code = $1 AND used_at IS NULL AND expires_at > $2
		RETURNING user_id`

	var userID int64
	err := tx.QueryRow(ctx, q, code, now).Scan(&userID)
	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to redeem link code", err)
	}
	return userID, true, nil
}
