package repository

import (
	"context"
	"time"

	"cast-dispatch/internal/domain/match"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
)

type MatchRepository struct{}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{}
}

func (r *MatchRepository) Create(ctx context.Context, tx db.DBTX, m *match.Match) (int64, error) {
	const q = `
		INSERT INTO matches (call_request_id, assignment_id, cast_id, status, duration_minutes, started_at, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var lat, lng *float64
	if loc := m.Location(); loc != nil {
		la, ln := loc.Latitude(), loc.Longitude()
		lat, lng = &la, &ln
	}

	var id int64
	err := tx.QueryRow(ctx, q,
		m.CallRequestID(), m.AssignmentID(), m.CastID(), m.Status().String(),
		m.DurationMinutes(), m.StartedAt(), lat, lng,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("match references missing request, assignment or cast", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create match", err)
	}
	return id, nil
}

// Extend grows the duration iff the match is still running. The guarded
// update returns the new duration; applied=false covers both "ended" and
// "missing", which the caller distinguishes with a follow-up read.
func (r *MatchRepository) Extend(ctx context.Context, tx db.DBTX, id int64, addMinutes int32) (int32, bool, error) {
	const q = `
		UPDATE matches
		SET duration_minutes = duration_minutes + $2, updated_at = now()
		WHERE id = $1 AND status = 'started'
		RETURNING duration_minutes`

	var newDuration int32
	err := tx.QueryRow(ctx, q, id, addMinutes).Scan(&newDuration)
	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to extend match", err)
	}
	return newDuration, true, nil
}

// End closes the match; applied=false means it was not in started state.
func (r *MatchRepository) End(ctx context.Context, tx db.DBTX, id int64, now time.Time) (bool, error) {
	const q = `
		UPDATE matches
		SET status = 'ended', ended_at = $2, updated_at = now()
		WHERE id = $1 AND status = 'started'`

	tag, err := tx.Exec(ctx, q, id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to end match", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Exists distinguishes "never started" from "already ended" for caller
// feedback after a guarded update matched no rows.
func (r *MatchRepository) Exists(ctx context.Context, tx db.DBTX, id int64) (bool, error) {
	var found bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`, id).Scan(&found)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check match existence", err)
	}
	return found, nil
}
