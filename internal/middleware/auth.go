package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"launchdash/internal/models"
)

// AuthMiddleware gates the dashboard behind an OIDC session when enabled.
type AuthMiddleware struct {
	enabled bool
}

// NewAuthMiddleware creates a new auth middleware instance. When enabled is
// false every request passes through.
func NewAuthMiddleware(enabled bool) *AuthMiddleware {
	return &AuthMiddleware{enabled: enabled}
}

// RequireViewer ensures the viewer is signed in. Page requests are redirected
// to /auth/login; API requests get a 401 JSON error.
func (m *AuthMiddleware) RequireViewer(c fiber.Ctx) error {
	if !m.enabled {
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	sub, _ := sess.Get(models.SessionViewerSub).(string)
	if sub == "" {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error":  "authentication required",
			})
		}
		sess.Set(models.SessionRedirectAfter, c.OriginalURL())
		return c.Redirect().To("/auth/login")
	}

	name, _ := sess.Get(models.SessionViewerName).(string)
	c.Locals("viewer", &models.Viewer{Sub: sub, Name: name})
	return c.Next()
}
