package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Nischal373/PAILA/internal/middleware"
	"github.com/Nischal373/PAILA/internal/service"
)

type ExportHandler struct {
	svc *service.ReportService
}

func NewExportHandler(svc *service.ReportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export handles GET /api/database/export (superadmin only)
// Streams all reports as a CSV download for municipal spreadsheet workflows.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	reports, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reports")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "title", "status", "severity", "department", "ward",
		"latitude", "longitude", "upvotes", "downvotes",
		"reported_at", "fixed_at",
	}
	if err := w.Write(header); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	for _, rep := range reports {
		ward := ""
		if rep.Ward != nil {
			ward = *rep.Ward
		}
		fixedAt := ""
		if rep.FixedTime != nil {
			fixedAt = rep.FixedTime.Format(time.RFC3339)
		}
		row := []string{
			rep.ID, rep.Title, string(rep.Status), string(rep.Severity),
			rep.Department, ward,
			strconv.FormatFloat(rep.Latitude, 'f', -1, 64),
			strconv.FormatFloat(rep.Longitude, 'f', -1, 64),
			strconv.Itoa(rep.Upvotes), strconv.Itoa(rep.Downvotes),
			rep.ReportTime.Format(time.RFC3339), fixedAt,
		}
		if err := w.Write(row); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	filename := "paila-reports-" + time.Now().UTC().Format("20060102") + ".csv"
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}
