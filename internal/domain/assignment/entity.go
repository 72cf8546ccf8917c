package assignment

import (
	"time"
)

// Assignment is one invitation linking a call request to a candidate cast.
// At most one live row exists per (request, cast) pair; the repository
// enforces that with an atomic upsert, and inbound responses are applied by
// a guarded update keyed on respondedAt so the first answer wins.
type Assignment struct {
	id            int64
	callRequestID int64
	castID        int64
	status        Status
	note          *string
	invitedAt     time.Time
	respondedAt   *time.Time
}

func ReconstructAssignment(
	id, callRequestID, castID int64,
	status Status,
	note *string,
	invitedAt time.Time,
	respondedAt *time.Time,
) *Assignment {
	return &Assignment{
		id:            id,
		callRequestID: callRequestID,
		castID:        castID,
		status:        status,
		note:          note,
		invitedAt:     invitedAt,
		respondedAt:   respondedAt,
	}
}

func (a *Assignment) ID() int64               { return a.id }
func (a *Assignment) CallRequestID() int64    { return a.callRequestID }
func (a *Assignment) CastID() int64           { return a.castID }
func (a *Assignment) Status() Status          { return a.status }
func (a *Assignment) Note() *string           { return a.note }
func (a *Assignment) InvitedAt() time.Time    { return a.invitedAt }
func (a *Assignment) RespondedAt() *time.Time { return a.respondedAt }
