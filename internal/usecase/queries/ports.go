package queries

import "context"

// Read-side ports. Implementations live in internal/infra/readstore.

type CandidateReadStore interface {
	// ListDayShifts returns every declared slot for the date, reserved ones
	// included; the caller applies the containment rule.
	ListDayShifts(ctx context.Context, date string) ([]*ShiftCandidate, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	List(ctx context.Context, status, date string, limit int32) ([]*RequestView, error)
}

type AssignmentReadStore interface {
	FindByID(ctx context.Context, id int64) (*AssignmentView, error)
	ListByRequest(ctx context.Context, callRequestID int64) ([]*AssignmentView, error)
}

type MatchReadStore interface {
	FindByID(ctx context.Context, id int64) (*MatchView, error)
	ActiveByCast(ctx context.Context, castID int64) (*MatchView, error)
	List(ctx context.Context, limit int32) ([]*MatchView, error)
}
