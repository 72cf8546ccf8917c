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

type MatchHandler struct {
	matchCmds    commands.MatchCommands
	matchQueries queries.MatchQueries
}

func NewMatchHandler(matchCmds commands.MatchCommands, matchQueries queries.MatchQueries) *MatchHandler {
	return &MatchHandler{
		matchCmds:    matchCmds,
		matchQueries: matchQueries,
	}
}

// @Summary Start a match
// @Description Start a timed engagement for an accepted assignment
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartMatchRequest true "Match parameters"
// @Success 201 {object} resdto.MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) Start(c *gin.Context) {
	var req reqdto.StartMatchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.matchCmds.Start(c.Request.Context(), commands.StartMatchParams{
		CallRequestID:   req.CallRequestID,
		AssignmentID:    req.AssignmentID,
		CastID:          req.CastID,
		DurationMinutes: req.DurationMinutes,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDuration):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Duration must be 60, 120 or 180 minutes",
			})
		case errors.Is(err, errs.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Call request not found",
			})
		case errors.Is(err, errs.ErrCastNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cast not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMatchView(view))
}

// @Summary Extend a match
// @Description Add 1 or 2 hours to a running match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param request body reqdto.ExtendMatchRequest true "Extension hours"
// @Success 200 {object} resdto.MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/extend [post]
func (h *MatchHandler) Extend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ExtendMatchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.matchCmds.Extend(c.Request.Context(), id, req.Hours)
	if err != nil {
		h.writeLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchView(view))
}

// @Summary End a match
// @Description End a running match; ending is terminal
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} resdto.MatchResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/end [post]
func (h *MatchHandler) End(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.matchCmds.End(c.Request.Context(), id)
	if err != nil {
		h.writeLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchView(view))
}

// @Summary Get match
// @Description Get a match by ID
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} resdto.MatchResponse
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.matchQueries.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Match not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchView(view))
}

// @Summary List matches
// @Description List matches, newest first
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.MatchResponse
// @Router /matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	views, err := h.matchQueries.List(c.Request.Context(), parseLimit(c.Query("limit")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchViews(views))
}

// @Summary Get a cast's active match
// @Description Return the running match for a cast; 204 when idle
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param cast_id query int true "Cast ID"
// @Success 200 {object} resdto.MatchResponse
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /matches/active [get]
func (h *MatchHandler) ActiveByCast(c *gin.Context) {
	castID, err := strconv.ParseInt(c.Query("cast_id"), 10, 64)
	if err != nil || castID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cast_id",
		})
		return
	}

	view, err := h.matchQueries.ActiveByCast(c.Request.Context(), castID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchView(view))
}

func (h *MatchHandler) writeLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Match not found",
		})
	case errors.Is(err, errs.ErrMatchAlreadyOver):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Match already ended",
		})
	case errors.Is(err, errs.ErrInvalidExtension):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Extension must be 1 or 2 hours",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
