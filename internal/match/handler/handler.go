// Package handler provides HTTP handlers for match lifecycle endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchModel "github.com/clubsports/matchday/internal/match/model"
	"github.com/clubsports/matchday/internal/match/service"
	"github.com/clubsports/matchday/internal/middleware"
	teamModel "github.com/clubsports/matchday/internal/team/model"
	"github.com/clubsports/matchday/pkg/token"
)

// Handler handles HTTP requests for match lifecycle endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RequestCreate handles POST /matches/request.
func (h *Handler) RequestCreate(c *gin.Context) {
	var req matchModel.RequestCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RequestCreate(c.Request.Context(), middleware.UserID(c), &req); err != nil {
		h.writeError(c, "error requesting match create", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "confirmation sent"})
}

// ConfirmCreate handles POST /matches/confirm.
func (h *Handler) ConfirmCreate(c *gin.Context) {
	var req matchModel.ConfirmCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	match, err := h.service.ConfirmCreate(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error confirming match create", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"match": match})
}

// RequestUpdate handles POST /matches/:id/update-request.
func (h *Handler) RequestUpdate(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req matchModel.RequestUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RequestUpdate(c.Request.Context(), middleware.UserID(c), matchID, &req); err != nil {
		h.writeError(c, "error requesting match update", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "confirmation sent"})
}

// ConfirmUpdate handles POST /matches/:id/confirm-update.
func (h *Handler) ConfirmUpdate(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req matchModel.ConfirmUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ConfirmUpdate(c.Request.Context(), matchID, &req); err != nil {
		h.writeError(c, "error confirming match update", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "rescheduled"})
}

// RequestDelete handles POST /matches/:id/delete-request.
func (h *Handler) RequestDelete(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req matchModel.RequestDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RequestDelete(c.Request.Context(), middleware.UserID(c), matchID, &req); err != nil {
		h.writeError(c, "error requesting match delete", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "confirmation sent"})
}

// ConfirmDelete handles POST /matches/:id/confirm-delete.
func (h *Handler) ConfirmDelete(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req matchModel.ConfirmDeleteRequest
	if err := c.ShouldBind(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ConfirmDelete(c.Request.Context(), matchID, &req); err != nil {
		h.writeError(c, "error confirming match delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetMatch handles GET /matches/:id.
func (h *Handler) GetMatch(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	match, err := h.service.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		h.writeError(c, "error getting match", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// TeamSchedule handles GET /teams/:id/schedule.
func (h *Handler) TeamSchedule(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
		return
	}

	matches, err := h.service.TeamSchedule(c.Request.Context(), uint(teamID))
	if err != nil {
		h.writeError(c, "error getting team schedule", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// writeError maps domain errors onto the response envelope.
func (h *Handler) writeError(c *gin.Context, logMsg string, err error) {
	switch {
	case errors.Is(err, matchModel.ErrInvalidSchedule):
		errorResponse(c, "INVALID_REQUEST", "date and time must be valid", http.StatusBadRequest)
	case errors.Is(err, matchModel.ErrSlotTaken):
		conflictResponse(c, "a match is already booked at this date and time")
	case errors.Is(err, token.ErrTokenExpired):
		unauthorizedResponse(c, "token expired")
	case errors.Is(err, token.ErrTokenInvalid), errors.Is(err, token.ErrTokenMismatch):
		unauthorizedResponse(c, "invalid token")
	case errors.Is(err, matchModel.ErrTokenUsed):
		unauthorizedResponse(c, "token already redeemed")
	case errors.Is(err, teamModel.ErrNotTeamCreator), errors.Is(err, matchModel.ErrNotParticipant):
		unauthorizedResponse(c, "caller is not a creator of a participating team")
	case errors.Is(err, matchModel.ErrMatchNotFound):
		notFoundResponse(c, "match not found")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

func matchIDParam(c *gin.Context) (uint, bool) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid match id", http.StatusBadRequest)
		return 0, false
	}
	return uint(matchID), true
}
