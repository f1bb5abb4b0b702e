// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clubsports/matchday/internal/cache"
	"github.com/clubsports/matchday/internal/match/handler"
	"github.com/clubsports/matchday/internal/match/repository"
	"github.com/clubsports/matchday/internal/match/service"
	"github.com/clubsports/matchday/internal/notifier"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
	"github.com/clubsports/matchday/pkg/token"
)

// Deps bundles the collaborators the match module needs.
type Deps struct {
	DB      *gorm.DB
	Issuer  *token.Issuer
	Nonces  cache.Client
	Mailer  notifier.Notifier
	BaseURL string
	Auth    gin.HandlerFunc
	Logger  *zap.SugaredLogger
}

// RegisterRoutes registers match module routes. The constructed service is
// returned because the result and settlement modules reuse its match-over
// check.
func RegisterRoutes(r *gin.Engine, deps Deps) service.Service {
	repo := repository.New(deps.DB)
	teamRepo := teamRepository.New(deps.DB)
	svc := service.New(repo, teamRepo, deps.DB, deps.Issuer, deps.Nonces, deps.Mailer, deps.BaseURL, deps.Logger)
	h := handler.New(svc, deps.Logger)

	// Request endpoints require a signed-in team creator.
	authed := r.Group("/", deps.Auth)
	authed.POST("/matches/request", h.RequestCreate)
	authed.POST("/matches/:id/update-request", h.RequestUpdate)
	authed.POST("/matches/:id/delete-request", h.RequestDelete)

	// Confirm endpoints authenticate via the action token in the payload.
	r.POST("/matches/confirm", h.ConfirmCreate)
	r.POST("/matches/:id/confirm-update", h.ConfirmUpdate)
	r.POST("/matches/:id/confirm-delete", h.ConfirmDelete)

	r.GET("/matches/:id", h.GetMatch)
	r.GET("/teams/:id/schedule", h.TeamSchedule)

	return svc
}
