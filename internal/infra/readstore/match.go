package readstore

import (
	"context"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/pkg/pgconv"
	"cast-dispatch/internal/usecase/queries"
)

type MatchReadStore struct {
	db db.DBTX
}

func NewMatchReadStore(dbtx db.DBTX) *MatchReadStore {
	return &MatchReadStore{db: dbtx}
}

const matchViewSelect = `
	SELECT
		m.id,
		m.call_request_id,
		m.assignment_id,
		m.cast_id,
		m.status,
		m.duration_minutes,
		m.started_at,
		m.ended_at,
		m.latitude,
		m.longitude,
		c.nickname,
		cu.line_user_id,
		ru.name,
		ru.line_user_id
	FROM matches m
	JOIN casts c ON c.id = m.cast_id
	JOIN users cu ON cu.id = c.user_id
	LEFT JOIN call_requests r ON r.id = m.call_request_id
	LEFT JOIN users ru ON ru.id = r.user_id`

func (s *MatchReadStore) FindByID(ctx context.Context, id int64) (*queries.MatchView, error) {
	q := matchViewSelect + ` WHERE m.id = $1`

	v, err := scanMatchView(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("match not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find match", err)
	}
	return v, nil
}

// ActiveByCast returns the cast's currently running match, if any. Advisory
// read: nothing prevents Start while one is running.
func (s *MatchReadStore) ActiveByCast(ctx context.Context, castID int64) (*queries.MatchView, error) {
	q := matchViewSelect + `
		WHERE m.cast_id = $1 AND m.status = 'started'
		ORDER BY m.started_at DESC
		LIMIT 1`

	v, err := scanMatchView(s.db.QueryRow(ctx, q, castID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active match", err)
	}
	return v, nil
}

// List returns matches newest first for the operator console.
func (s *MatchReadStore) List(ctx context.Context, limit int32) ([]*queries.MatchView, error) {
	q := matchViewSelect + `
		ORDER BY m.started_at DESC
		LIMIT $1`

	rows, err := s.db.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list matches", err)
	}
	defer rows.Close()

	var result []*queries.MatchView
	for rows.Next() {
		v, err := scanMatchView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan match row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate match rows", err)
	}
	return result, nil
}

func scanMatchView(row rowScanner) (*queries.MatchView, error) {
	var v queries.MatchView
	err := row.Scan(
		&v.ID, &v.CallRequestID, &v.AssignmentID, &v.CastID,
		&v.Status, &v.DurationMinutes, &v.StartedAt, &v.EndedAt,
		&v.Latitude, &v.Longitude,
		&v.CastNickname, &v.CastLineUserID,
		&v.RequesterName, &v.RequesterLineID,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
