package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/assetflow/maintenance-service/internal/store"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       *store.Store
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, s *store.Store) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: s}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. State is in-memory, so readiness reduces to
// the store being constructed; collection sizes are reported for
// operators.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ready",
		"collections": h.store.Counts(),
	})
}
