package api

import (
	"github.com/gofiber/fiber/v3"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Response is the JSON envelope every API endpoint returns.
type Response[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func jsonSuccess[T any](c fiber.Ctx, data T) error {
	return c.JSON(Response[T]{Status: statusOK, Data: data})
}

// jsonError writes an error envelope. Error responses are marked no-store so
// the chart cache never replays them.
func jsonError(c fiber.Ctx, status int, message string) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).JSON(Response[any]{Status: statusError, Error: message})
}
