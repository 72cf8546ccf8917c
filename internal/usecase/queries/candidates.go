package queries

import (
	"context"
	"sort"

	"cast-dispatch/internal/domain/request"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/pkg/errs"
)

type CandidateQueries interface {
	// FindForWindow lists casts whose unreserved shift fully covers the window.
	FindForWindow(ctx context.Context, date, start, end string) ([]*CandidateView, error)
	// FindForRequest is the same search keyed by an existing request's window.
	FindForRequest(ctx context.Context, callRequestID int64) ([]*CandidateView, error)
}

type candidateQueriesImpl struct {
	candidates CandidateReadStore
	requests   RequestReadStore
}

func NewCandidateQueries(candidates CandidateReadStore, requests RequestReadStore) CandidateQueries {
	return &candidateQueriesImpl{candidates: candidates, requests: requests}
}

func (q *candidateQueriesImpl) FindForWindow(ctx context.Context, date, start, end string) ([]*CandidateView, error) {
	window, err := request.NewTimeWindow(date, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeWindow)
	}

	shifts, err := q.candidates.ListDayShifts(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// 複数シフトが重なるキャストも結果には一度だけ載せる
	views := make([]*CandidateView, 0, len(shifts))
	seen := make(map[int64]struct{}, len(shifts))
	for _, s := range shifts {
		if !s.Slot.Covers(window) {
			continue
		}
		castID := s.Slot.CastID()
		if _, ok := seen[castID]; ok {
			continue
		}
		seen[castID] = struct{}{}
		views = append(views, &CandidateView{
			CastID:   castID,
			Nickname: s.Nickname,
			Email:    s.Email,
			Linked:   s.Linked,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CastID < views[j].CastID })
	return views, nil
}

func (q *candidateQueriesImpl) FindForRequest(ctx context.Context, callRequestID int64) ([]*CandidateView, error) {
	req, err := q.requests.FindByID(ctx, callRequestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.FindForWindow(ctx, req.Date, req.StartTime, req.EndTime)
}
