package middleware

import (
	"crypto/subtle"
	"strings"

	"propdesk-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequireToken gates routes behind the configured API token. Callers
// (interactive or scheduled) present "Authorization: Bearer <token>";
// the token is compared in constant time against the configured secret.
// Identity and role management live outside this service.
func RequireToken(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return response.Error(c, "API token not configured", fiber.StatusInternalServerError, nil)
		}
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return response.Unauthorized(c, "Unauthorized")
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}
