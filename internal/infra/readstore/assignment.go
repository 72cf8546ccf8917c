package readstore

import (
	"context"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/pkg/pgconv"
	"cast-dispatch/internal/usecase/queries"
)

type AssignmentReadStore struct {
	db db.DBTX
}

func NewAssignmentReadStore(dbtx db.DBTX) *AssignmentReadStore {
	return &AssignmentReadStore{db: dbtx}
}

// FindByID loads the assignment joined with the invited cast's channel
// identity and the request window; the webhook processor validates the
// responder against this view.
func (r *AssignmentReadStore) FindByID(ctx context.Context, id int64) (*queries.AssignmentView, error) {
	const q = `
		SELECT
			a.id,
			a.call_request_id,
			a.cast_id,
			a.status,
			a.note,
			a.invited_at,
			a.responded_at,
			c.nickname,
			u.line_user_id,
			to_char(r.date, 'YYYY-MM-DD'),
			to_char(r.start_time, 'HH24:MI'),
			to_char(r.end_time, 'HH24:MI'),
			r.place
		FROM assignments a
		JOIN casts c ON c.id = a.cast_id
		JOIN users u ON u.id = c.user_id
		JOIN call_requests r ON r.id = a.call_request_id
		WHERE a.id = $1`

	var v queries.AssignmentView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.CallRequestID, &v.CastID, &v.Status, &v.Note,
		&v.InvitedAt, &v.RespondedAt,
		&v.CastNickname, &v.CastLineUserID,
		&v.RequestDate, &v.RequestStart, &v.RequestEnd, &v.RequestPlace,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("assignment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find assignment view", err)
	}
	return &v, nil
}

// ListByRequest feeds the operator console's per-request assignment panel.
func (r *AssignmentReadStore) ListByRequest(ctx context.Context, callRequestID int64) ([]*queries.AssignmentView, error) {
	const q = `
		SELECT
			a.id,
			a.call_request_id,
			a.cast_id,
			a.status,
			a.note,
			a.invited_at,
			a.responded_at,
			c.nickname,
			u.line_user_id,
			to_char(r.date, 'YYYY-MM-DD'),
			to_char(r.start_time, 'HH24:MI'),
			to_char(r.end_time, 'HH24:MI'),
			r.place
		FROM assignments a
		JOIN casts c ON c.id = a.cast_id
		JOIN users u ON u.id = c.user_id
		JOIN call_requests r ON r.id = a.call_request_id
		WHERE a.call_request_id = $1
		ORDER BY a.invited_at DESC`

	rows, err := r.db.Query(ctx, q, callRequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments", err)
	}
	defer rows.Close()

	var result []*queries.AssignmentView
	for rows.Next() {
		var v queries.AssignmentView
		if err := rows.Scan(
			&v.ID, &v.CallRequestID, &v.CastID, &v.Status, &v.Note,
			&v.InvitedAt, &v.RespondedAt,
			&v.CastNickname, &v.CastLineUserID,
			&v.RequestDate, &v.RequestStart, &v.RequestEnd, &v.RequestPlace,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignment rows", err)
	}
	return result, nil
}
