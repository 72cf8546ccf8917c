package response

import (
	"time"

	"cast-dispatch/internal/usecase/queries"
)

type MatchResponse struct {
	ID              int64      `json:"id"`
	CallRequestID   *int64     `json:"callRequestId,omitempty"`
	AssignmentID    *int64     `json:"assignmentId,omitempty"`
	CastID          int64      `json:"castId"`
	CastNickname    string     `json:"castNickname"`
	RequesterName   *string    `json:"requesterName,omitempty"`
	Status          string     `json:"status"`
	DurationMinutes int32      `json:"durationMinutes"`
	StartedAt       time.Time  `json:"startedAt"`
	ScheduledEndAt  time.Time  `json:"scheduledEndAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
}

func FromMatchView(rm *queries.MatchView) *MatchResponse {
	return &MatchResponse{
		ID:              rm.ID,
		CallRequestID:   rm.CallRequestID,
		AssignmentID:    rm.AssignmentID,
		CastID:          rm.CastID,
		CastNickname:    rm.CastNickname,
		RequesterName:   rm.RequesterName,
		Status:          rm.Status,
		DurationMinutes: rm.DurationMinutes,
		StartedAt:       rm.StartedAt,
		ScheduledEndAt:  rm.StartedAt.Add(time.Duration(rm.DurationMinutes) * time.Minute),
		EndedAt:         rm.EndedAt,
		Latitude:        rm.Latitude,
		Longitude:       rm.Longitude,
	}
}

func FromMatchViews(rms []*queries.MatchView) []*MatchResponse {
	out := make([]*MatchResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromMatchView(rm)
	}
	return out
}
