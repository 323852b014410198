package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Nischal373/PAILA/internal/metrics"
	"github.com/Nischal373/PAILA/internal/middleware"
	"github.com/Nischal373/PAILA/internal/model"
	"github.com/Nischal373/PAILA/internal/repository"
	"github.com/Nischal373/PAILA/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// List handles GET /api/reports
func (h *ReportHandler) List(c fiber.Ctx) error {
	reports, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reports")
	}
	if reports == nil {
		reports = []model.Report{}
	}
	return c.JSON(fiber.Map{"reports": reports})
}

// Get handles GET /api/reports/:id
func (h *ReportHandler) Get(c fiber.Ctx) error {
	reportID, errMsg := middleware.ValidateReportID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", errMsg)
	}

	rep, err := h.svc.Get(c.Context(), reportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Report not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load report")
	}
	return c.JSON(fiber.Map{"report": rep})
}

// Create handles POST /api/reports
func (h *ReportHandler) Create(c fiber.Ctx) error {
	var req model.NewReportInput
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	rep, err := h.svc.Create(c.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create report")
	}

	metrics.ReportsCreatedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"report": rep})
}

// UpdateStatus handles PATCH /api/reports/:id/status (superadmin only)
func (h *ReportHandler) UpdateStatus(c fiber.Ctx) error {
	reportID, errMsg := middleware.ValidateReportID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", errMsg)
	}

	var req model.StatusUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if errMsg := middleware.ValidateStatus(req.Status); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_STATUS", errMsg)
	}

	var fixedTime *time.Time
	if req.FixedTime != "" {
		t, err := time.Parse(time.RFC3339, req.FixedTime)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "fixedTime must be an RFC 3339 timestamp")
		}
		fixedTime = &t
	}

	rep, err := h.svc.UpdateStatus(c.Context(), reportID, req.Status, fixedTime)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Report not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
	}
	return c.JSON(fiber.Map{"report": rep})
}
