// Package router provides settlement module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	matchService "github.com/clubsports/matchday/internal/match/service"
	resultRepository "github.com/clubsports/matchday/internal/result/repository"
	"github.com/clubsports/matchday/internal/settlement/handler"
	"github.com/clubsports/matchday/internal/settlement/repository"
	"github.com/clubsports/matchday/internal/settlement/service"
	"github.com/clubsports/matchday/internal/statistics/statcache"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
)

// Deps bundles the collaborators the settlement module needs.
type Deps struct {
	DB       *gorm.DB
	MatchSvc matchService.Service
	Cache    *statcache.Store
	Auth     gin.HandlerFunc
	Logger   *zap.SugaredLogger
}

// RegisterRoutes registers settlement module routes.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	svc := service.New(
		repository.New(deps.DB),
		resultRepository.New(deps.DB),
		teamRepository.New(deps.DB),
		deps.MatchSvc,
		deps.DB,
		deps.Cache,
		deps.Logger,
	)
	h := handler.New(svc, deps.Logger)

	authed := r.Group("/", deps.Auth)
	authed.POST("/matches/:id/settle", h.SettleMatchResults)
}
