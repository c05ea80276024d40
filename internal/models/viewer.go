package models

// Session keys shared by the auth handler and middleware.
const (
	SessionViewerSub     = "viewer_sub"
	SessionViewerName    = "viewer_name"
	SessionOAuthState    = "oauth_state"
	SessionRedirectAfter = "redirect_after_login"
)

// Viewer is a signed-in dashboard user, present only when OIDC is enabled.
type Viewer struct {
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// DisplayName returns the best human-readable identifier for the viewer.
func (v *Viewer) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	if v.Email != "" {
		return v.Email
	}
	return v.Sub
}
