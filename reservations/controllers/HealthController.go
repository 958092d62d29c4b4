package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startedAt = time.Now()

// HealthController is the unauthenticated liveness probe.
func (rc *ReservationController) HealthController(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startedAt).Seconds(),
	})
}

// AuthCheckController lets the dashboard verify an admin key without
// touching the ledger. The admin middleware has already run.
func (rc *ReservationController) AuthCheckController(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
	})
}
