package handlers

import (
	"maps"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/config"
)

// Branding is the site identity every page template reads from the layout.
type Branding struct {
	SiteTitle   string
	SiteFooter  string
	AuthEnabled bool // Shows the sign-out link
}

// BrandingFor picks the branding values out of cfg.
func BrandingFor(cfg *config.Config) Branding {
	return Branding{
		SiteTitle:   cfg.SiteTitle,
		SiteFooter:  cfg.SiteFooter,
		AuthEnabled: cfg.IsAuthEnabled(),
	}
}

// Values returns the branding as template variables.
func (b Branding) Values() fiber.Map {
	return fiber.Map{
		"SiteTitle":   b.SiteTitle,
		"SiteFooter":  b.SiteFooter,
		"AuthEnabled": b.AuthEnabled,
	}
}

// MergeBranding adds the branding variables to data and returns it.
// Keys already present in data are overwritten.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	maps.Copy(data, BrandingFor(cfg).Values())
	return data
}
