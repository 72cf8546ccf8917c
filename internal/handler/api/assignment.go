package api

import (
	"errors"
	"net/http"

	reqdto "cast-dispatch/internal/handler/dto/request"
	resdto "cast-dispatch/internal/handler/dto/response"
	"cast-dispatch/internal/pkg/errs"
	"cast-dispatch/internal/usecase/commands"
	"cast-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignmentCmds    commands.AssignmentCommands
	assignmentQueries queries.AssignmentQueries
}

func NewAssignmentHandler(
	assignmentCmds commands.AssignmentCommands,
	assignmentQueries queries.AssignmentQueries,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentCmds:    assignmentCmds,
		assignmentQueries: assignmentQueries,
	}
}

// @Summary Invite a cast
// @Description Invite a cast to a call request; re-inviting resets the prior response
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Call request ID"
// @Param request body reqdto.InviteCastRequest true "Invite request"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id}/invite [post]
func (h *AssignmentHandler) Invite(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.InviteCastRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.assignmentCmds.Invite(c.Request.Context(), requestID, req.CastID, req.GetNote())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Call request not found",
			})
		case errors.Is(err, errs.ErrCastNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cast not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAssignmentView(view))
}

// @Summary List assignments for a request
// @Description List the invitation roster of a call request
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Call request ID"
// @Success 200 {array} resdto.AssignmentResponse
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id}/assignments [get]
func (h *AssignmentHandler) ListByRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.assignmentQueries.ListByRequest(c.Request.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Call request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssignmentViews(views))
}

// @Summary Remove an assignment
// @Description Withdraw an invitation; removing an unknown assignment is a no-op
// @Tags assignments
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/assignments/{id} [delete]
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assignmentCmds.Unassign(c.Request.Context(), assignmentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
