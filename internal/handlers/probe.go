package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessStatus is the /readyz response body.
type ReadinessStatus struct {
	Status   string `json:"status"`
	Source   string `json:"source"`
	Launches int    `json:"launches"`
	Error    string `json:"error,omitempty"`
}

// ProbeHandler serves the liveness and readiness endpoints.
type ProbeHandler struct {
	source   string
	launches int
	db       Pinger
}

// NewProbeHandler creates a probe handler for a dataset of launches records
// read from source. db is nil when the dataset came from a file.
func NewProbeHandler(source string, launches int, db Pinger) *ProbeHandler {
	return &ProbeHandler{source: source, launches: launches, db: db}
}

// Liveness answers 200 while the process is serving.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Readiness answers 200 once the dataset is loaded, which happens before the
// server listens, and the database source (if any) is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	status := ReadinessStatus{Status: "ok", Source: h.source, Launches: h.launches}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			status.Status = "error"
			status.Error = "database unavailable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
	}

	return c.JSON(status)
}
