package repository

import (
	"context"
	"time"

	"cast-dispatch/internal/domain/assignment"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
)

type AssignmentRepository struct{}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{}
}

// Upsert creates the invitation or, when the (request, cast) pair already
// exists, resets it to a fresh invited state. The single statement is the
// concurrency guard: two racing invites settle on one row.
func (r *AssignmentRepository) Upsert(ctx context.Context, tx db.DBTX, callRequestID, castID int64, note *string, now time.Time) (*assignment.Assignment, error) {
	const q = `
		INSERT INTO assignments (call_request_id, cast_id, status, note, invited_at, responded_at)
		VALUES ($1, $2, 'invited', $3, $4, NULL)
		ON CONFLICT (call_request_id, cast_id) DO UPDATE SET
			status       = 'invited',
			note         = COALESCE(EXCLUDED.note, assignments.note),
			invited_at   = EXCLUDED.invited_at,
			responded_at = NULL,
			updated_at   = now()
		RETURNING id, call_request_id, cast_id, status, note, invited_at, responded_at`

	row := tx.QueryRow(ctx, q, callRequestID, castID, note, now)

	var (
		id, reqID, cID int64
		status         string
		dbNote         *string
		invitedAt      time.Time
		respondedAt    *time.Time
	)
	if err := row.Scan(&id, &reqID, &cID, &status, &dbNote, &invitedAt, &respondedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("invite references missing request or cast", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to upsert assignment", err)
	}

	return assignment.ReconstructAssignment(id, reqID, cID, assignment.Status(status), dbNote, invitedAt, respondedAt), nil
}

// Respond applies the accept/decline transition. The responded_at IS NULL
// predicate makes the update idempotent: of two racing events exactly one
// reports applied=true.
func (r *AssignmentRepository) Respond(ctx context.Context, tx db.DBTX, id int64, status assignment.Status, now time.Time) (bool, error) {
	const q = `
		UPDATE assignments
		SET status = $2, responded_at = $3, updated_at = now()
		WHERE id = $1 AND responded_at IS NULL`

	tag, err := tx.Exec(ctx, q, id, status.String(), now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to apply assignment response", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete is the operator unassign: idempotent, reports whether a row went away.
func (r *AssignmentRepository) Delete(ctx context.Context, tx db.DBTX, id int64) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete assignment", err)
	}
	return tag.RowsAffected() == 1, nil
}
