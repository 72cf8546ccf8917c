package queries

import (
	"time"

	"cast-dispatch/internal/domain/shift"
)

// CandidateView is one matchable cast for a request window. A cast with
// several qualifying shifts appears once.
type CandidateView struct {
	CastID   int64   `json:"cast_id"`
	Nickname string  `json:"nickname"`
	Email    *string `json:"email,omitempty"`
	Linked   bool    `json:"linked"`
}

// ShiftCandidate pairs a declared slot with the cast data a candidate view
// needs. Window containment is decided in the usecase, not in SQL.
type ShiftCandidate struct {
	Slot     *shift.AvailabilitySlot
	Nickname string
	Email    *string
	Linked   bool
}

// RequestView is read-optimized call request data.
type RequestView struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	Place      string    `json:"place"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	TotalPrice *int64    `json:"total_price,omitempty"`
	UserLineID *string   `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AssignmentView joins the assignment with the data webhook processing
// needs: the invited cast's linked channel identity and the request window.
type AssignmentView struct {
	ID             int64      `json:"id"`
	CallRequestID  int64      `json:"call_request_id"`
	CastID         int64      `json:"cast_id"`
	Status         string     `json:"status"`
	Note           *string    `json:"note,omitempty"`
	InvitedAt      time.Time  `json:"invited_at"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	CastNickname   string     `json:"cast_nickname"`
	CastLineUserID *string    `json:"-"`
	RequestDate    string     `json:"request_date"`
	RequestStart   string     `json:"request_start"`
	RequestEnd     string     `json:"request_end"`
	RequestPlace   string     `json:"request_place"`
}

// MatchView is read-optimized match data with both parties' identities.
type MatchView struct {
	ID              int64      `json:"id"`
	CallRequestID   *int64     `json:"call_request_id,omitempty"`
	AssignmentID    *int64     `json:"assignment_id,omitempty"`
	CastID          int64      `json:"cast_id"`
	Status          string     `json:"status"`
	DurationMinutes int32      `json:"duration_minutes"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	CastNickname    string     `json:"cast_nickname"`
	CastLineUserID  *string    `json:"-"`
	RequesterName   *string    `json:"requester_name,omitempty"`
	RequesterLineID *string    `json:"-"`
}
