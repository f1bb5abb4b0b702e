// Package router provides result module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	matchService "github.com/clubsports/matchday/internal/match/service"
	"github.com/clubsports/matchday/internal/result/handler"
	"github.com/clubsports/matchday/internal/result/repository"
	"github.com/clubsports/matchday/internal/result/service"
	"github.com/clubsports/matchday/internal/statistics/statcache"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
)

// Deps bundles the collaborators the result module needs.
type Deps struct {
	DB       *gorm.DB
	MatchSvc matchService.Service
	Cache    *statcache.Store
	Auth     gin.HandlerFunc
	Logger   *zap.SugaredLogger
}

// RegisterRoutes registers result module routes.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	repo := repository.New(deps.DB)
	teamRepo := teamRepository.New(deps.DB)
	svc := service.New(repo, teamRepo, deps.MatchSvc, deps.DB, deps.Cache, deps.Logger)
	h := handler.New(svc, deps.Logger)

	authed := r.Group("/", deps.Auth)
	authed.POST("/matches/:id/results", h.RecordTeamResult)
	authed.POST("/matches/:id/members/:memberId/result", h.RecordPlayerResult)
}
