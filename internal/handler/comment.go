package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Nischal373/PAILA/internal/middleware"
	"github.com/Nischal373/PAILA/internal/model"
	"github.com/Nischal373/PAILA/internal/repository"
	"github.com/Nischal373/PAILA/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /api/reports/:id/comments
func (h *CommentHandler) List(c fiber.Ctx) error {
	reportID, errMsg := middleware.ValidateReportID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", errMsg)
	}

	comments, err := h.svc.List(c.Context(), reportID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load comments")
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// Add handles POST /api/reports/:id/comments (authenticated)
func (h *CommentHandler) Add(c fiber.Ctx) error {
	reportID, errMsg := middleware.ValidateReportID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", errMsg)
	}

	var req model.CommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	raw := req.Body
	if raw == "" {
		raw = req.Text
	}
	body, errMsg := middleware.ValidateCommentBody(raw)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}

	user, _ := middleware.SessionUserFromCtx(c)
	author := user.DisplayName
	if author == "" {
		author = user.Username
	}

	comment, err := h.svc.Add(c.Context(), reportID, author, body)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Report not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to post comment")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}
