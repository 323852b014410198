package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Nischal373/PAILA/internal/model"
)

// Field length limits matching database schema constraints.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 64
	MinPasswordLen = 6
	MaxPasswordLen = 128
	MaxCommentLen  = 2000
	MaxTitleLen    = 200
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateUsername checks signup username shape. Returns the trimmed value
// and an empty string, or an error message.
func ValidateUsername(username string) (string, string) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", "username is required"
	}
	if len(username) < MinUsernameLen {
		return "", "Username must be at least 3 characters"
	}
	if len(username) > MaxUsernameLen {
		return "", "Username must be at most 64 characters"
	}
	return username, ""
}

// ValidatePassword checks signup password shape.
func ValidatePassword(password string) string {
	if password == "" {
		return "password is required"
	}
	if len(password) < MinPasswordLen {
		return "Password must be at least 6 characters"
	}
	if len(password) > MaxPasswordLen {
		return "Password must be at most 128 characters"
	}
	return ""
}

// ValidateReportID checks that a path parameter is a well-formed report id.
func ValidateReportID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return "", "Report not found"
	}
	return id, ""
}

// ValidateDirection checks a vote direction.
func ValidateDirection(d model.VoteDirection) string {
	if !model.ValidDirection(d) {
		return `direction must be "up" or "down"`
	}
	return ""
}

// ValidateStatus checks a repair status value.
func ValidateStatus(s model.ReportStatus) string {
	if !model.ValidStatus(s) {
		return "status must be one of: reported, scheduled, in_progress, fixed"
	}
	return ""
}

// ValidateCommentBody trims and bounds a comment body.
func ValidateCommentBody(body string) (string, string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", "Comment text is required"
	}
	if len(body) > MaxCommentLen {
		return "", "Comment must be at most 2000 characters"
	}
	return body, ""
}
