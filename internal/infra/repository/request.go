package repository

import (
	"context"

	"cast-dispatch/internal/domain/request"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
)

type CallRequestRepository struct{}

func NewCallRequestRepository() *CallRequestRepository {
	return &CallRequestRepository{}
}

// Exists is the invite precondition check inside the same transaction.
func (r *CallRequestRepository) Exists(ctx context.Context, tx db.DBTX, id int64) (bool, error) {
	var found bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM call_requests WHERE id = $1)`, id).Scan(&found)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check call request existence", err)
	}
	return found, nil
}

// MarkAssignedIfPending applies the invite side effect. A request in any
// other status keeps it; that is not an error.
func (r *CallRequestRepository) MarkAssignedIfPending(ctx context.Context, tx db.DBTX, id int64) (bool, error) {
	const q = `
		UPDATE call_requests
		SET status = 'assigned', updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark call request assigned", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatus is the operator-driven direct set. The value was validated
// against the allow-list upstream; no transition table applies here.
func (r *CallRequestRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id int64, status request.Status) (bool, error) {
	const q = `
		UPDATE call_requests
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id, status.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update call request status", err)
	}
	return tag.RowsAffected() == 1, nil
}
