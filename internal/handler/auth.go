package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Nischal373/PAILA/internal/middleware"
	"github.com/Nischal373/PAILA/internal/model"
	"github.com/Nischal373/PAILA/internal/repository"
	"github.com/Nischal373/PAILA/internal/service"
	"github.com/Nischal373/PAILA/internal/session"
)

type AuthHandler struct {
	svc           *service.AuthService
	codec         *session.Codec
	auth          *middleware.SessionAuth
	secureCookies bool
}

func NewAuthHandler(svc *service.AuthService, codec *session.Codec, auth *middleware.SessionAuth, secureCookies bool) *AuthHandler {
	return &AuthHandler{svc: svc, codec: codec, auth: auth, secureCookies: secureCookies}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "username and password are required")
	}

	user, err := h.svc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
	}
	// Unknown username and wrong password produce the same response.
	if user == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	}

	if err := h.setSessionCookie(c, *user); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session")
	}
	return c.JSON(model.AuthResponse{OK: true, User: *user})
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req model.SignupRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	username, errMsg := middleware.ValidateUsername(req.Username)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}
	if errMsg := middleware.ValidatePassword(req.Password); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", errMsg)
	}

	user, err := h.svc.Register(c.Context(), username, req.Password, req.DisplayName)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
		case errors.Is(err, repository.ErrUsernameTaken):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create account")
	}

	if err := h.setSessionCookie(c, *user); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session")
	}
	return c.JSON(model.AuthResponse{OK: true, User: *user})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"ok": true})
}

// Me handles GET /api/auth/me — returns the current session user or null.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	user, ok := h.auth.Current(c)
	if !ok {
		return c.JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *AuthHandler) setSessionCookie(c fiber.Ctx, user model.SessionUser) error {
	token, err := h.codec.Encode(user)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		MaxAge:   int(session.TTL.Seconds()),
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
