//go:build unit

package builder

import (
	"time"

	"cast-dispatch/internal/usecase/queries"
)

var baseTime = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

type RequestViewBuilder struct {
	view queries.RequestView
}

func NewRequestViewBuilder() *RequestViewBuilder {
	return &RequestViewBuilder{
		view: queries.RequestView{
			ID:        1,
			UserID:    10,
			UserName:  "田中",
			Place:     "渋谷",
			Date:      "2025-06-01",
			StartTime: "19:00",
			EndTime:   "21:00",
			Status:    "pending",
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
		},
	}
}

func (b *RequestViewBuilder) WithID(id int64) *RequestViewBuilder {
	b.view.ID = id
	return b
}

func (b *RequestViewBuilder) WithStatus(status string) *RequestViewBuilder {
	b.view.Status = status
	return b
}

func (b *RequestViewBuilder) Build() *queries.RequestView {
	v := b.view
	return &v
}

type AssignmentViewBuilder struct {
	view queries.AssignmentView
}

func NewAssignmentViewBuilder() *AssignmentViewBuilder {
	lineID := "U1234567890abcdef"
	return &AssignmentViewBuilder{
		view: queries.AssignmentView{
			ID:             5,
			CallRequestID:  1,
			CastID:         3,
			Status:         "invited",
			InvitedAt:      baseTime,
			CastNickname:   "あおい",
			CastLineUserID: &lineID,
			RequestDate:    "2025-06-01",
			RequestStart:   "19:00",
			RequestEnd:     "21:00",
			RequestPlace:   "渋谷",
		},
	}
}

func (b *AssignmentViewBuilder) WithID(id int64) *AssignmentViewBuilder {
	b.view.ID = id
	return b
}

func (b *AssignmentViewBuilder) WithStatus(status string, respondedAt *time.Time) *AssignmentViewBuilder {
	b.view.Status = status
	b.view.RespondedAt = respondedAt
	return b
}

func (b *AssignmentViewBuilder) WithCastLineUserID(id *string) *AssignmentViewBuilder {
	b.view.CastLineUserID = id
	return b
}

func (b *AssignmentViewBuilder) Build() *queries.AssignmentView {
	v := b.view
	return &v
}

type MatchViewBuilder struct {
	view queries.MatchView
}

func NewMatchViewBuilder() *MatchViewBuilder {
	callRequestID := int64(1)
	castLineID := "U1234567890abcdef"
	requesterLineID := "Ufedcba0987654321"
	requesterName := "田中"
	return &MatchViewBuilder{
		view: queries.MatchView{
			ID:              7,
			CallRequestID:   &callRequestID,
			CastID:          3,
			Status:          "started",
			DurationMinutes: 120,
			StartedAt:       baseTime,
			CastNickname:    "あおい",
			CastLineUserID:  &castLineID,
			RequesterName:   &requesterName,
			RequesterLineID: &requesterLineID,
		},
	}
}

func (b *MatchViewBuilder) WithID(id int64) *MatchViewBuilder {
	b.view.ID = id
	return b
}

func (b *MatchViewBuilder) WithStatus(status string) *MatchViewBuilder {
	b.view.Status = status
	return b
}

func (b *MatchViewBuilder) WithDuration(minutes int32) *MatchViewBuilder {
	b.view.DurationMinutes = minutes
	return b
}

func (b *MatchViewBuilder) WithLineIDs(cast, requester *string) *MatchViewBuilder {
	b.view.CastLineUserID = cast
	b.view.RequesterLineID = requester
	return b
}

func (b *MatchViewBuilder) Build() *queries.MatchView {
	v := b.view
	return &v
}
