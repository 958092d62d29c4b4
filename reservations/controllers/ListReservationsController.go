package controllers

import (
	"car-rental-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListReservationsController returns the full ledger contents. The
// read path takes no lock; a missing ledger is an empty list, not an
// error.
func (rc *ReservationController) ListReservationsController(c *fiber.Ctx) error {
	reservations, err := rc.Store.List()
	if err != nil {
		config.Logger.Error("Failed to read reservations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error reading reservations",
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"total":        len(reservations),
		"reservations": reservations,
	})
}
