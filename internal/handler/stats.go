package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Nischal373/PAILA/internal/middleware"
	"github.com/Nischal373/PAILA/internal/service"
)

type StatsHandler struct {
	svc *service.ReportService
}

func NewStatsHandler(svc *service.ReportService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
	}
	return c.JSON(stats)
}

// Leaderboard handles GET /api/leaderboard
func (h *StatsHandler) Leaderboard(c fiber.Ctx) error {
	entries, err := h.svc.Leaderboard(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build leaderboard")
	}
	return c.JSON(fiber.Map{"leaderboard": entries})
}
