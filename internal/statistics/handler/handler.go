// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clubsports/matchday/internal/statistics/service"
	teamModel "github.com/clubsports/matchday/internal/team/model"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// TeamSummary handles GET /teams/:id/stats.
func (h *Handler) TeamSummary(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.TeamSummary(c.Request.Context(), teamID)
	if err != nil {
		h.writeError(c, "error getting team summary", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TopPlayers handles GET /teams/:id/top-players.
func (h *Handler) TopPlayers(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.TopPlayers(c.Request.Context(), teamID)
	if err != nil {
		h.writeError(c, "error getting top players", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Players handles GET /teams/:id/players.
func (h *Handler) Players(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.Players(c.Request.Context(), teamID)
	if err != nil {
		h.writeError(c, "error getting players", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Cards handles GET /teams/:id/cards.
func (h *Handler) Cards(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.Cards(c.Request.Context(), teamID)
	if err != nil {
		h.writeError(c, "error getting cards", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) writeError(c *gin.Context, logMsg string, err error) {
	if errors.Is(err, teamModel.ErrTeamNotFound) {
		errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
		return
	}
	h.logger.Errorw(logMsg, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}

func teamIDParam(c *gin.Context) (uint, bool) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
		return 0, false
	}
	return uint(teamID), true
}
