package response

import (
	"time"

	"cast-dispatch/internal/usecase/queries"
)

type CallRequestResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName"`
	Place      string    `json:"place"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Status     string    `json:"status"`
	TotalPrice *int64    `json:"totalPrice,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromRequestView(rm *queries.RequestView) *CallRequestResponse {
	return &CallRequestResponse{
		ID:         rm.ID,
		UserID:     rm.UserID,
		UserName:   rm.UserName,
		Place:      rm.Place,
		Date:       rm.Date,
		StartTime:  rm.StartTime,
		EndTime:    rm.EndTime,
		Status:     rm.Status,
		TotalPrice: rm.TotalPrice,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromRequestViews(rms []*queries.RequestView) []*CallRequestResponse {
	out := make([]*CallRequestResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromRequestView(rm)
	}
	return out
}
