package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "cast-dispatch/internal/handler/dto/request"
	resdto "cast-dispatch/internal/handler/dto/response"
	"cast-dispatch/internal/pkg/errs"
	"cast-dispatch/internal/usecase/commands"
	"cast-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	assignmentCmds   commands.AssignmentCommands
	requestQueries   queries.RequestQueries
	candidateQueries queries.CandidateQueries
}

func NewRequestHandler(
	assignmentCmds commands.AssignmentCommands,
	requestQueries queries.RequestQueries,
	candidateQueries queries.CandidateQueries,
) *RequestHandler {
	return &RequestHandler{
		assignmentCmds:   assignmentCmds,
		requestQueries:   requestQueries,
		candidateQueries: candidateQueries,
	}
}

// @Summary List call requests
// @Description List call requests with optional status and date filters
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.CallRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	views, err := h.requestQueries.List(c.Request.Context(), c.Query("status"), c.Query("date"), limit)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRequestStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get call request
// @Description Get a call request by ID
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Call request ID"
// @Success 200 {object} resdto.CallRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.requestQueries.Get(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Update request status
// @Description Set the call request status directly
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Call request ID"
// @Param request body reqdto.UpdateRequestStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id}/status [patch]
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateRequestStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.assignmentCmds.UpdateRequestStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRequestStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
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

	c.Status(http.StatusNoContent)
}

// @Summary List candidates for a request
// @Description List casts whose unreserved shift covers the request window
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Call request ID"
// @Success 200 {array} resdto.CandidateResponse
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id}/candidates [get]
func (h *RequestHandler) Candidates(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.candidateQueries.FindForRequest(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Call request not found",
			})
		case errors.Is(err, errs.ErrInvalidTimeWindow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Request has an invalid time window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCandidateViews(views))
}

// @Summary Search candidates by window
// @Description List casts available for an arbitrary date and time window
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start time (HH:MM)"
// @Param end query string true "End time (HH:MM)"
// @Success 200 {array} resdto.CandidateResponse
// @Failure 400 {object} map[string]string
// @Router /admin/candidates [get]
func (h *RequestHandler) CandidatesByWindow(c *gin.Context) {
	views, err := h.candidateQueries.FindForWindow(
		c.Request.Context(), c.Query("date"), c.Query("start"), c.Query("end"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTimeWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCandidateViews(views))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return 0, false
	}
	return id, true
}

func parseLimit(s string) int32 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 0 {
		return 0
	}
	return int32(n)
}
