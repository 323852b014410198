package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Nischal373/PAILA/internal/metrics"
	"github.com/Nischal373/PAILA/internal/middleware"
	"github.com/Nischal373/PAILA/internal/model"
	"github.com/Nischal373/PAILA/internal/repository"
	"github.com/Nischal373/PAILA/internal/service"
)

// VoterCookieName carries the anonymous voter identity. It is not a session:
// no signature, long-lived, set on first vote attempt.
const VoterCookieName = "paila_voter_id"

const voterCookieMaxAge = 365 * 24 * 60 * 60

type VoteHandler struct {
	svc           *service.VoteService
	secureCookies bool
}

func NewVoteHandler(svc *service.VoteService, secureCookies bool) *VoteHandler {
	return &VoteHandler{svc: svc, secureCookies: secureCookies}
}

// Cast handles POST /api/reports/:id/vote
func (h *VoteHandler) Cast(c fiber.Ctx) error {
	reportID, errMsg := middleware.ValidateReportID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", errMsg)
	}

	var req model.VoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if errMsg := middleware.ValidateDirection(req.Direction); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_DIRECTION", errMsg)
	}

	// Assign the voter identity before the outcome is known, so the cookie
	// sticks whether the vote lands, duplicates, or misses the report. A
	// fresh identity gets exactly one successful vote per report from here
	// on.
	voterID := c.Cookies(VoterCookieName)
	if voterID == "" {
		voterID = uuid.NewString()
	}
	c.Cookie(&fiber.Cookie{
		Name:     VoterCookieName,
		Value:    voterID,
		MaxAge:   voterCookieMaxAge,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	rep, err := h.svc.Cast(c.Context(), reportID, voterID, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateVote):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "DUPLICATE_VOTE", "You already voted on this report.")
		case errors.Is(err, repository.ErrNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Report not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record vote")
	}

	metrics.VotesTotal.WithLabelValues(string(req.Direction)).Inc()
	return c.JSON(fiber.Map{"ok": true, "report": rep})
}
