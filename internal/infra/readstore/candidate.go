package readstore

import (
	"context"

	"cast-dispatch/internal/domain/shift"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/usecase/queries"
)

type CandidateReadStore struct {
	db db.DBTX
}

func NewCandidateReadStore(dbtx db.DBTX) *CandidateReadStore {
	return &CandidateReadStore{db: dbtx}
}

// ListDayShifts loads every shift declared for the date together with the
// owning cast. Containment and the reserved flag are judged by the domain
// slot, so this query stays a plain day fetch.
func (r *CandidateReadStore) ListDayShifts(ctx context.Context, date string) ([]*queries.ShiftCandidate, error) {
	const q = `
		SELECT
			s.id,
			s.cast_id,
			to_char(s.date, 'YYYY-MM-DD'),
			to_char(s.start_time, 'HH24:MI'),
			to_char(s.end_time, 'HH24:MI'),
			s.is_reserved,
			c.nickname,
			u.email,
			(u.line_user_id IS NOT NULL AND u.line_linked_at IS NOT NULL) AS linked
		FROM cast_shifts s
		JOIN casts c ON c.id = s.cast_id
		JOIN users u ON u.id = c.user_id
		WHERE s.date = $1::date
		ORDER BY s.cast_id ASC, s.id ASC`

	rows, err := r.db.Query(ctx, q, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query day shifts", err)
	}
	defer rows.Close()

	var result []*queries.ShiftCandidate
	for rows.Next() {
		var (
			id, castID           int64
			slotDate, start, end string
			reserved, linked     bool
			nickname             string
			email                *string
		)
		if err := rows.Scan(&id, &castID, &slotDate, &start, &end, &reserved, &nickname, &email, &linked); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shift row", err)
		}
		result = append(result, &queries.ShiftCandidate{
			Slot:     shift.ReconstructAvailabilitySlot(id, castID, slotDate, start, end, reserved),
			Nickname: nickname,
			Email:    email,
			Linked:   linked,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shift rows", err)
	}
	return result, nil
}
