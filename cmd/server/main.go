package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/Nischal373/PAILA/internal/config"
	"github.com/Nischal373/PAILA/internal/db"
	"github.com/Nischal373/PAILA/internal/handler"
	"github.com/Nischal373/PAILA/internal/metrics"
	"github.com/Nischal373/PAILA/internal/middleware"
	"github.com/Nischal373/PAILA/internal/repository"
	"github.com/Nischal373/PAILA/internal/router"
	"github.com/Nischal373/PAILA/internal/service"
	"github.com/Nischal373/PAILA/internal/session"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	middleware.InitLogger(cfg.LogLevel, "paila-api")
	logger := middleware.Logger

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := db.Ensure(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	cache := service.NewCacheService(cfg.RedisURL, logger)
	defer cache.Close()

	metrics.Register(pool)

	codec := session.NewCodec(cfg.SessionSecret)
	auth := middleware.NewSessionAuth(codec)

	userRepo := repository.NewUserRepo(pool)
	reportRepo := repository.NewReportRepo(pool)
	voteRepo := repository.NewVoteRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)

	authSvc := service.NewAuthService(userRepo, cfg.BootstrapAccounts, logger)
	reportSvc := service.NewReportService(reportRepo, cache, logger)
	voteSvc := service.NewVoteService(voteRepo, cache, logger)
	commentSvc := service.NewCommentService(commentRepo, logger)

	secure := cfg.IsProduction()
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc, codec, auth, secure),
		Report:  handler.NewReportHandler(reportSvc),
		Vote:    handler.NewVoteHandler(voteSvc, secure),
		Comment: handler.NewCommentHandler(commentSvc),
		Stats:   handler.NewStatsHandler(reportSvc),
		Export:  handler.NewExportHandler(reportSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Paila API",
		ServerHeader: "Paila",
	})

	router.Setup(app, handlers, auth, cfg.CORSOrigins)

	logger.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Int("bootstrap_accounts", len(cfg.BootstrapAccounts)).
		Msg("paila backend starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
