package readstore

import (
	"context"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/pkg/pgconv"
	"cast-dispatch/internal/usecase/queries"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestViewColumns = `
	r.id,
	r.user_id,
	u.name,
	r.place,
	to_char(r.date, 'YYYY-MM-DD'),
	to_char(r.start_time, 'HH24:MI'),
	to_char(r.end_time, 'HH24:MI'),
	r.status,
	r.total_price,
	u.line_user_id,
	r.created_at,
	r.updated_at`

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	q := `SELECT ` + requestViewColumns + `
		FROM call_requests r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	row := r.db.QueryRow(ctx, q, id)
	v, err := scanRequestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("call request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find call request", err)
	}
	return v, nil
}

// List returns requests newest first with optional status and exact-date
// filters, for the operator console.
func (r *RequestReadStore) List(ctx context.Context, status, date string, limit int32) ([]*queries.RequestView, error) {
	q := `SELECT ` + requestViewColumns + `
		FROM call_requests r
		JOIN users u ON u.id = r.user_id
		WHERE ($1 = '' OR r.status = $1)
		  AND ($2 = '' OR r.date = $2::date)
		ORDER BY r.id DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, q, status, date, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list call requests", err)
	}
	defer rows.Close()

	var result []*queries.RequestView
	for rows.Next() {
		v, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan call request row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate call request rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequestView(row rowScanner) (*queries.RequestView, error) {
	var v queries.RequestView
	err := row.Scan(
		&v.ID, &v.UserID, &v.UserName, &v.Place,
		&v.Date, &v.StartTime, &v.EndTime,
		&v.Status, &v.TotalPrice, &v.UserLineID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
