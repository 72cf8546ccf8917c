package queries

import (
	"context"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/pkg/errs"
)

type MatchQueries interface {
	Get(ctx context.Context, id int64) (*MatchView, error)
	// ActiveByCast returns the cast's running match, or nil when idle.
	ActiveByCast(ctx context.Context, castID int64) (*MatchView, error)
	List(ctx context.Context, limit int32) ([]*MatchView, error)
}

type matchQueriesImpl struct {
	matches MatchReadStore
}

func NewMatchQueries(matches MatchReadStore) MatchQueries {
	return &matchQueriesImpl{matches: matches}
}

func (q *matchQueriesImpl) Get(ctx context.Context, id int64) (*MatchView, error) {
	view, err := q.matches.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMatchNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *matchQueriesImpl) ActiveByCast(ctx context.Context, castID int64) (*MatchView, error) {
	view, err := q.matches.ActiveByCast(ctx, castID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *matchQueriesImpl) List(ctx context.Context, limit int32) ([]*MatchView, error) {
	views, err := q.matches.List(ctx, clampLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
