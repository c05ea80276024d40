package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"launchdash/internal/config"
	"launchdash/internal/models"
)

// AuthHandler handles OIDC authentication flows.
type AuthHandler struct {
	provider     *oidc.Provider
	oauth2Config oauth2.Config
	verifier     *oidc.IDTokenVerifier
	cfg          *config.Config
	log          *slog.Logger
}

// NewAuthHandler creates a new auth handler with OIDC configuration.
func NewAuthHandler(ctx context.Context, cfg *config.Config, log *slog.Logger) (*AuthHandler, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}

	oauth2Config := oauth2.Config{
		ClientID:     cfg.OIDCClientID,
		ClientSecret: cfg.OIDCClientSecret,
		RedirectURL:  cfg.OIDCRedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	verifier := provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID})

	return &AuthHandler{
		provider:     provider,
		oauth2Config: oauth2Config,
		verifier:     verifier,
		cfg:          cfg,
		log:          log,
	}, nil
}

// Login starts the OIDC authorization code flow.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	state := uuid.NewString()
	sess.Set(models.SessionOAuthState, state)

	return c.Redirect().To(h.oauth2Config.AuthCodeURL(state))
}

// Callback completes the flow, stores the viewer in the session and returns
// to the page that required the login.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	savedState, _ := sess.Get(models.SessionOAuthState).(string)
	sess.Delete(models.SessionOAuthState)
	if savedState == "" || savedState != c.Query("state") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}

	token, idToken, err := h.exchange(c.Context(), c.Query("code"))
	if err != nil {
		return err
	}

	viewer, err := h.viewerFromToken(c.Context(), token, idToken)
	if err != nil {
		return err
	}
	sess.Set(models.SessionViewerSub, viewer.Sub)
	sess.Set(models.SessionViewerName, viewer.DisplayName())
	h.log.Info("viewer signed in", "sub", viewer.Sub)

	target, _ := sess.Get(models.SessionRedirectAfter).(string)
	sess.Delete(models.SessionRedirectAfter)
	if !isLocalPath(target) {
		target = "/"
	}

	return c.Redirect().To(target)
}

// Logout clears the viewer session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Destroy()
	}
	return c.Redirect().To("/")
}

// exchange trades the authorization code for tokens and verifies the ID token.
func (h *AuthHandler) exchange(ctx context.Context, code string) (*oauth2.Token, *oidc.IDToken, error) {
	if code == "" {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "missing code")
	}

	token, err := h.oauth2Config.Exchange(ctx, code)
	if err != nil {
		h.log.Warn("code exchange failed", "error", err)
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}

	idToken, err := h.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}
	return token, idToken, nil
}

// viewerFromToken reads the viewer's identity from the ID token claims,
// asking the userinfo endpoint when the token carries only the subject.
func (h *AuthHandler) viewerFromToken(ctx context.Context, token *oauth2.Token, idToken *oidc.IDToken) (models.Viewer, error) {
	var claims struct {
		Sub   string `json:"sub"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return models.Viewer{}, fmt.Errorf("failed to decode id_token claims: %w", err)
	}

	viewer := models.Viewer{Sub: claims.Sub, Name: claims.Name, Email: claims.Email}
	if viewer.Name != "" || viewer.Email != "" {
		return viewer, nil
	}

	info, err := h.provider.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		h.log.Warn("failed to fetch userinfo", "error", err)
		return viewer, nil
	}
	viewer.Email = info.Email
	var profile struct {
		Name string `json:"name"`
	}
	if err := info.Claims(&profile); err == nil {
		viewer.Name = profile.Name
	}
	return viewer, nil
}

func requireSession(c fiber.Ctx) (*session.Middleware, error) {
	sess := session.FromContext(c)
	if sess == nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	return sess, nil
}

// isLocalPath reports whether target is a same-origin path, so a stored
// redirect can never send the viewer to another host.
func isLocalPath(target string) bool {
	return len(target) > 0 && target[0] == '/' && (len(target) == 1 || (target[1] != '/' && target[1] != '\\'))
}
