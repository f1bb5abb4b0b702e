// Package handler provides HTTP handlers for result recording endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchModel "github.com/clubsports/matchday/internal/match/model"
	"github.com/clubsports/matchday/internal/middleware"
	resultModel "github.com/clubsports/matchday/internal/result/model"
	"github.com/clubsports/matchday/internal/result/service"
	teamModel "github.com/clubsports/matchday/internal/team/model"
)

// Handler handles HTTP requests for result recording endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new result handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RecordTeamResult handles POST /matches/:id/results.
func (h *Handler) RecordTeamResult(c *gin.Context) {
	matchID, ok := pathID(c, "id", "invalid match id")
	if !ok {
		return
	}

	var req resultModel.RecordTeamResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RecordTeamResult(c.Request.Context(), middleware.UserID(c), matchID, &req); err != nil {
		h.writeError(c, "error recording team result", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "result recorded"})
}

// RecordPlayerResult handles POST /matches/:id/members/:memberId/result.
func (h *Handler) RecordPlayerResult(c *gin.Context) {
	matchID, ok := pathID(c, "id", "invalid match id")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId", "invalid member id")
	if !ok {
		return
	}

	var req resultModel.RecordPlayerResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RecordPlayerResult(c.Request.Context(), middleware.UserID(c), matchID, memberID, &req); err != nil {
		h.writeError(c, "error recording player result", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "result recorded"})
}

// writeError maps domain errors onto the response envelope.
//
// A duplicate submission reports NOT_FOUND: the contract hides whether the
// opposing team has already reported.
func (h *Handler) writeError(c *gin.Context, logMsg string, err error) {
	switch {
	case errors.Is(err, matchModel.ErrMatchNotOver):
		errorResponse(c, "INVALID_REQUEST", "match has not concluded yet", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrNotTeamCreator):
		unauthorizedResponse(c, "caller is not the creator of the reporting team")
	case errors.Is(err, resultModel.ErrResultExists):
		notFoundResponse(c, "result submission not available")
	case errors.Is(err, resultModel.ErrResultNotFound):
		notFoundResponse(c, "team does not play in this match")
	case errors.Is(err, matchModel.ErrMatchNotFound):
		notFoundResponse(c, "match not found")
	case errors.Is(err, teamModel.ErrMemberNotFound):
		notFoundResponse(c, "member not found in team")
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

func pathID(c *gin.Context, param, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", message, http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}
