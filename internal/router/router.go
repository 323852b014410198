package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Nischal373/PAILA/internal/handler"
	"github.com/Nischal373/PAILA/internal/metrics"
	"github.com/Nischal373/PAILA/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Report  *handler.ReportHandler
	Vote    *handler.VoteHandler
	Comment *handler.CommentHandler
	Stats   *handler.StatsHandler
	Export  *handler.ExportHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, auth *middleware.SessionAuth, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(metrics.Middleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics live outside the API group
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	// Auth routes
	loginLimit := middleware.NewLoginRateLimiter()
	signupLimit := middleware.NewSignupRateLimiter()
	api.Post("/auth/login", h.Auth.Login, loginLimit.Handler())
	api.Post("/auth/signup", h.Auth.Signup, signupLimit.Handler())
	api.Post("/auth/logout", h.Auth.Logout)
	api.Get("/auth/me", h.Auth.Me)

	// Report routes
	createLimit := middleware.NewReportCreateRateLimiter()
	api.Get("/reports", h.Report.List)
	api.Post("/reports", h.Report.Create, createLimit.Handler())
	api.Get("/reports/:id", h.Report.Get)
	api.Patch("/reports/:id/status", h.Report.UpdateStatus, auth.RequireSuperAdmin())

	// Vote routes
	voteLimit := middleware.NewVoteRateLimiter()
	api.Post("/reports/:id/vote", h.Vote.Cast, voteLimit.Handler())

	// Comment routes
	api.Get("/reports/:id/comments", h.Comment.List)
	api.Post("/reports/:id/comments", h.Comment.Add, auth.RequireAuthenticated())

	// Stats routes
	statsLimit := middleware.NewStatsRateLimiter()
	api.Get("/stats", h.Stats.GetStats, statsLimit.Handler())
	api.Get("/leaderboard", h.Stats.Leaderboard)

	// Export (superadmin)
	exportLimit := middleware.NewExportRateLimiter()
	api.Get("/database/export", h.Export.Export,
		auth.RequireSuperAdmin(), exportLimit.Handler())
}
