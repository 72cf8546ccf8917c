package request

type StartMatchRequest struct {
	CallRequestID   int64    `json:"call_request_id" binding:"required"`
	AssignmentID    *int64   `json:"assignment_id,omitempty"`
	CastID          int64    `json:"cast_id" binding:"required"`
	DurationMinutes int32    `json:"duration_minutes" binding:"required"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

type ExtendMatchRequest struct {
	Hours int `json:"hours" binding:"required"`
}
