package match

import (
	"errors"
	"time"
)

var (
	ErrInvalidDuration = errors.New("duration must be 60, 120 or 180 minutes")
)

// Match is a realized, timed engagement following an accepted assignment.
// Lifecycle transitions after creation (extend, end) run as guarded updates
// in the repository; the entity only models what a new match must satisfy.
type Match struct {
	callRequestID   int64
	assignmentID    *int64
	castID          int64
	status          Status
	durationMinutes int32
	startedAt       time.Time
	location        *Geo
}

func NewMatch(callRequestID int64, assignmentID *int64, castID int64, durationMinutes int32, location *Geo, now time.Time) (*Match, error) {
	if !IsAllowedDuration(durationMinutes) {
		return nil, ErrInvalidDuration
	}
	return &Match{
		callRequestID:   callRequestID,
		assignmentID:    assignmentID,
		castID:          castID,
		status:          StatusStarted,
		durationMinutes: durationMinutes,
		startedAt:       now,
		location:        location,
	}, nil
}

// EndsAt is the scheduled end computed from the duration.
func (m *Match) EndsAt() time.Time {
	return m.startedAt.Add(time.Duration(m.durationMinutes) * time.Minute)
}

func (m *Match) CallRequestID() int64   { return m.callRequestID }
func (m *Match) AssignmentID() *int64   { return m.assignmentID }
func (m *Match) CastID() int64          { return m.castID }
func (m *Match) Status() Status         { return m.status }
func (m *Match) DurationMinutes() int32 { return m.durationMinutes }
func (m *Match) StartedAt() time.Time   { return m.startedAt }
func (m *Match) Location() *Geo         { return m.location }
