// Package handler provides HTTP handlers for settlement endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchModel "github.com/clubsports/matchday/internal/match/model"
	"github.com/clubsports/matchday/internal/middleware"
	settlementModel "github.com/clubsports/matchday/internal/settlement/model"
	"github.com/clubsports/matchday/internal/settlement/service"
	teamModel "github.com/clubsports/matchday/internal/team/model"
)

// Handler handles HTTP requests for settlement endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new settlement handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SettleMatchResults handles POST /matches/:id/settle.
func (h *Handler) SettleMatchResults(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid match id", http.StatusBadRequest)
		return
	}

	var req settlementModel.SettleMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SettleMatchResults(c.Request.Context(), middleware.UserID(c), uint(matchID), &req); err != nil {
		h.writeError(c, "error settling match results", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "results submitted"})
}

// writeError maps domain errors onto the response envelope.
func (h *Handler) writeError(c *gin.Context, logMsg string, err error) {
	switch {
	case errors.Is(err, matchModel.ErrMatchNotOver):
		errorResponse(c, "INVALID_REQUEST", "match has not concluded yet", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrNotTeamCreator):
		errorResponse(c, "UNAUTHORIZED", "caller is not the creator of the submitting team", http.StatusUnauthorized)
	case errors.Is(err, matchModel.ErrNotParticipant):
		errorResponse(c, "UNAUTHORIZED", "team does not play in this match", http.StatusUnauthorized)
	case errors.Is(err, settlementModel.ErrStatsExist):
		errorResponse(c, "NOT_FOUND", "result submission not available", http.StatusNotFound)
	case errors.Is(err, matchModel.ErrMatchNotFound):
		errorResponse(c, "NOT_FOUND", "match not found", http.StatusNotFound)
	case errors.Is(err, teamModel.ErrMemberNotFound):
		errorResponse(c, "NOT_FOUND", "member not found in team", http.StatusNotFound)
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// ErrorResponse represents the error response envelope.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}
