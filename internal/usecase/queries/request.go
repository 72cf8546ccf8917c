package queries

import (
	"context"

	"cast-dispatch/internal/domain/request"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/pkg/errs"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type RequestQueries interface {
	Get(ctx context.Context, id int64) (*RequestView, error)
	List(ctx context.Context, status, date string, limit int32) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
}

func NewRequestQueries(requests RequestReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests}
}

func (q *requestQueriesImpl) Get(ctx context.Context, id int64) (*RequestView, error) {
	view, err := q.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *requestQueriesImpl) List(ctx context.Context, status, date string, limit int32) ([]*RequestView, error) {
	if status != "" && !request.Status(status).IsValid() {
		return nil, errs.ErrInvalidRequestStatus
	}
	views, err := q.requests.List(ctx, status, date, clampLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func clampLimit(limit int32) int32 {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
