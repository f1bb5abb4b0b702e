// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clubsports/matchday/internal/statistics/handler"
	"github.com/clubsports/matchday/internal/statistics/repository"
	"github.com/clubsports/matchday/internal/statistics/service"
	"github.com/clubsports/matchday/internal/statistics/statcache"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
)

// Deps bundles the collaborators the statistics module needs.
type Deps struct {
	DB     *gorm.DB
	Cache  *statcache.Store
	Logger *zap.SugaredLogger
}

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	repo := repository.New(deps.DB, deps.Logger)
	teamRepo := teamRepository.New(deps.DB)
	svc := service.New(repo, teamRepo, deps.Cache, deps.Logger)
	h := handler.New(svc, deps.Logger)

	r.GET("/teams/:id/stats", h.TeamSummary)
	r.GET("/teams/:id/top-players", h.TopPlayers)
	r.GET("/teams/:id/players", h.Players)
	r.GET("/teams/:id/cards", h.Cards)
}
