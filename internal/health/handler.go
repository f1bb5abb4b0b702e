// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clubsports/matchday/internal/database"
)

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, rdb *redis.Client, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		rdb:    rdb,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := database.HealthCheck(h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{
			Status: "unhealthy",
		})
		return
	}

	// Cache being down degrades reads but does not make the service unhealthy.
	cacheStatus := "ok"
	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.logger.Warnw("redis ping failed", "error", err)
			cacheStatus = "unavailable"
		}
	}

	c.JSON(http.StatusOK, Response{
		Status: "ok",
		Cache:  cacheStatus,
	})
}
