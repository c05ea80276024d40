package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"launchdash/internal/models"
)

func newTestApp(enabled bool) *fiber.App {
	app := fiber.New()

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
	})
	app.Use(sessionMiddleware)

	m := NewAuthMiddleware(enabled)

	// Test-only sign-in route standing in for the OIDC callback.
	app.Post("/signin", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		sess.Set(models.SessionViewerSub, "sub-123")
		sess.Set(models.SessionViewerName, "Ada")
		return c.SendString("ok")
	})
	app.Get("/", m.RequireViewer, func(c fiber.Ctx) error {
		viewer, _ := c.Locals("viewer").(*models.Viewer)
		if viewer == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(viewer.Name)
	})
	app.Get("/api/charts/pie", m.RequireViewer, func(c fiber.Ctx) error {
		return c.SendString("pie")
	})

	return app
}

func TestRequireViewer_Disabled(t *testing.T) {
	app := newTestApp(false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireViewer_RedirectsPages(t *testing.T) {
	app := newTestApp(true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?site=ALL", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		t.Fatalf("status = %d, want redirect", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != "/auth/login" {
		t.Errorf("Location = %q, want /auth/login", got)
	}
}

func TestRequireViewer_RejectsAPI(t *testing.T) {
	app := newTestApp(true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/charts/pie", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireViewer_SignedIn(t *testing.T) {
	app := newTestApp(true)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/signin", nil))
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("sign in returned no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Ada" {
		t.Errorf("body = %q, want viewer name %q", body, "Ada")
	}
}
