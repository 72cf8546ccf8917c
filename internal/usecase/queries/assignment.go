package queries

import (
	"context"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/pkg/errs"
)

type AssignmentQueries interface {
	Get(ctx context.Context, id int64) (*AssignmentView, error)
	ListByRequest(ctx context.Context, callRequestID int64) ([]*AssignmentView, error)
}

type assignmentQueriesImpl struct {
	assignments AssignmentReadStore
	requests    RequestReadStore
}

func NewAssignmentQueries(assignments AssignmentReadStore, requests RequestReadStore) AssignmentQueries {
	return &assignmentQueriesImpl{assignments: assignments, requests: requests}
}

func (q *assignmentQueriesImpl) Get(ctx context.Context, id int64) (*AssignmentView, error) {
	view, err := q.assignments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAssignmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ListByRequest returns the invitation roster. An unknown request is an
// error; a known request with no invitations returns an empty list.
func (q *assignmentQueriesImpl) ListByRequest(ctx context.Context, callRequestID int64) ([]*AssignmentView, error) {
	if _, err := q.requests.FindByID(ctx, callRequestID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views, err := q.assignments.ListByRequest(ctx, callRequestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
