package response

import (
	"time"

	"cast-dispatch/internal/usecase/queries"
)

type AssignmentResponse struct {
	ID            int64      `json:"id"`
	CallRequestID int64      `json:"callRequestId"`
	CastID        int64      `json:"castId"`
	CastNickname  string     `json:"castNickname"`
	Status        string     `json:"status"`
	Note          *string    `json:"note,omitempty"`
	InvitedAt     time.Time  `json:"invitedAt"`
	RespondedAt   *time.Time `json:"respondedAt,omitempty"`
}

func FromAssignmentView(rm *queries.AssignmentView) *AssignmentResponse {
	return &AssignmentResponse{
		ID:            rm.ID,
		CallRequestID: rm.CallRequestID,
		CastID:        rm.CastID,
		CastNickname:  rm.CastNickname,
		Status:        rm.Status,
		Note:          rm.Note,
		InvitedAt:     rm.InvitedAt,
		RespondedAt:   rm.RespondedAt,
	}
}

func FromAssignmentViews(rms []*queries.AssignmentView) []*AssignmentResponse {
	out := make([]*AssignmentResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromAssignmentView(rm)
	}
	return out
}

type CandidateResponse struct {
	CastID   int64   `json:"castId"`
	Nickname string  `json:"nickname"`
	Email    *string `json:"email,omitempty"`
	Linked   bool    `json:"linked"`
}

func FromCandidateViews(rms []*queries.CandidateView) []*CandidateResponse {
	out := make([]*CandidateResponse, len(rms))
	for i, rm := range rms {
		out[i] = &CandidateResponse{
			CastID:   rm.CastID,
			Nickname: rm.Nickname,
			Email:    rm.Email,
			Linked:   rm.Linked,
		}
	}
	return out
}
