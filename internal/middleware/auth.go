package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Nischal373/PAILA/internal/model"
	"github.com/Nischal373/PAILA/internal/session"
)

const sessionUserKey = "sessionUser"

// SessionAuth guards routes with the signed session cookie. Every request is
// evaluated independently: anonymous, then authenticated on a valid
// signature and expiry, then authorized on a role check.
type SessionAuth struct {
	codec *session.Codec
}

func NewSessionAuth(codec *session.Codec) *SessionAuth {
	return &SessionAuth{codec: codec}
}

// Current returns the session user carried by the request cookie, if any.
func (a *SessionAuth) Current(c fiber.Ctx) (model.SessionUser, bool) {
	token := c.Cookies(session.CookieName)
	if token == "" {
		return model.SessionUser{}, false
	}
	return a.codec.Decode(token)
}

// RequireAuthenticated rejects requests without a valid session with 401.
func (a *SessionAuth) RequireAuthenticated() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := a.Current(c)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		}
		c.Locals(sessionUserKey, user)
		return c.Next()
	}
}

// RequireSuperAdmin rejects unauthenticated requests with 401 and
// authenticated non-superadmin users with 403.
func (a *SessionAuth) RequireSuperAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := a.Current(c)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		}
		if user.Role != model.RoleSuperAdmin {
			return ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "Superadmin access required")
		}
		c.Locals(sessionUserKey, user)
		return c.Next()
	}
}

// SessionUserFromCtx returns the user stored by RequireAuthenticated or
// RequireSuperAdmin.
func SessionUserFromCtx(c fiber.Ctx) (model.SessionUser, bool) {
	user, ok := c.Locals(sessionUserKey).(model.SessionUser)
	return user, ok
}
