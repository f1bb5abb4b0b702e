// Package main provides the entry point for the HTTP server.
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/clubsports/matchday/internal/cache"
	appConfig "github.com/clubsports/matchday/internal/config"
	"github.com/clubsports/matchday/internal/database"
	"github.com/clubsports/matchday/internal/database/migrate"
	"github.com/clubsports/matchday/internal/health"
	matchRouter "github.com/clubsports/matchday/internal/match/router"
	"github.com/clubsports/matchday/internal/middleware"
	"github.com/clubsports/matchday/internal/notifier"
	resultRouter "github.com/clubsports/matchday/internal/result/router"
	settlementRouter "github.com/clubsports/matchday/internal/settlement/router"
	statisticsRouter "github.com/clubsports/matchday/internal/statistics/router"
	"github.com/clubsports/matchday/internal/statistics/statcache"
	"github.com/clubsports/matchday/pkg/logger"
	"github.com/clubsports/matchday/pkg/token"
)

func main() {
	// Missing .env is fine, variables may come from the environment.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.NewWithConfig(cfg.Database)
	if err != nil {
		zl.Fatalw("failed to connect to database", "error", cfg.Database.SanitizeError(err))
	}

	if appConfig.GetEnvBool("RUN_MIGRATIONS", true) {
		if err := migrate.Migrate(db); err != nil {
			zl.Fatalw("failed to apply migrations", "error", err)
		}
		zl.Infow("migrations applied")
	}

	cacheClient, rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		zl.Fatalw("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
	}

	stats := statcache.New(cacheClient, zl)
	issuer := token.New(cfg.Token.Secret, cfg.Token.ActionTTL)
	mailer := notifier.New(cfg.SMTP, zl)
	auth := middleware.Auth(cfg.Token)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zl), middleware.Recovery(zl))

	healthHandler := health.New(db, rdb, zl)
	r.GET("/health", healthHandler.Check)

	matchSvc := matchRouter.RegisterRoutes(r, matchRouter.Deps{
		DB:      db,
		Issuer:  issuer,
		Nonces:  cacheClient,
		Mailer:  mailer,
		BaseURL: cfg.Token.ConfirmBaseURL,
		Auth:    auth,
		Logger:  zl,
	})
	resultRouter.RegisterRoutes(r, resultRouter.Deps{
		DB:       db,
		MatchSvc: matchSvc,
		Cache:    stats,
		Auth:     auth,
		Logger:   zl,
	})
	settlementRouter.RegisterRoutes(r, settlementRouter.Deps{
		DB:       db,
		MatchSvc: matchSvc,
		Cache:    stats,
		Auth:     auth,
		Logger:   zl,
	})
	statisticsRouter.RegisterRoutes(r, statisticsRouter.Deps{
		DB:     db,
		Cache:  stats,
		Logger: zl,
	})

	addr := cfg.Server.GetAddress()
	zl.Infow("starting server", "address", addr)
	if err := r.Run(addr); err != nil {
		zl.Fatalw("failed to start server", "error", err)
	}
}
