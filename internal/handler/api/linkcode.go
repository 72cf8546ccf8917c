package api

import (
	"errors"
	"net/http"

	reqdto "cast-dispatch/internal/handler/dto/request"
	resdto "cast-dispatch/internal/handler/dto/response"
	"cast-dispatch/internal/pkg/errs"
	"cast-dispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type LinkCodeHandler struct {
	linkCodeCmds commands.LinkCodeCommands
}

func NewLinkCodeHandler(linkCodeCmds commands.LinkCodeCommands) *LinkCodeHandler {
	return &LinkCodeHandler{linkCodeCmds: linkCodeCmds}
}

// @Summary Issue a link code
// @Description Issue a one-time code binding a user account to a messaging identity
// @Tags link-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueLinkCodeRequest true "Target user"
// @Success 201 {object} resdto.LinkCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/link-codes [post]
func (h *LinkCodeHandler) Issue(c *gin.Context) {
	var req reqdto.IssueLinkCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	code, err := h.linkCodeCmds.Issue(c.Request.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIssuedLinkCode(code))
}
