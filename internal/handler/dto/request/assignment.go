package request

import "strings"

type InviteCastRequest struct {
	CastID int64   `json:"cast_id" binding:"required"`
	Note   *string `json:"note,omitempty"`
}

func (r InviteCastRequest) GetNote() *string {
	if r.Note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
