package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// NewCORS returns a CORS middleware for the Paila API.
// corsOrigins is a comma-separated list of allowed origins; "*" allows all
// (development default). Credentials are only allowed with explicit origins —
// the session and voter cookies require it in production.
func NewCORS(corsOrigins string) fiber.Handler {
	origins := []string{"*"}
	explicit := corsOrigins != "" && corsOrigins != "*"
	if explicit {
		origins = strings.Split(corsOrigins, ",")
		for i, o := range origins {
			origins[i] = strings.TrimSpace(o)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: explicit,
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPatch,
			fiber.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		ExposeHeaders: []string{
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		MaxAge: 86400,
	})
}
