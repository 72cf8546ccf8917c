package response

import (
	"time"

	"cast-dispatch/internal/usecase/commands"
)

type LinkCodeResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromIssuedLinkCode(code *commands.IssuedLinkCode) *LinkCodeResponse {
	return &LinkCodeResponse{
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
	}
}
