package request

type IssueLinkCodeRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}
