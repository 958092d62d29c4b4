package controllers

import (
	"errors"
	"strings"

	"car-rental-backend/config"
	"car-rental-backend/ledger"
	"car-rental-backend/reservations/requests"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateStatusController changes the status of one reservation,
// located by its id. The rewrite goes through the same lock and
// atomic replace as submission so concurrent updates are never lost.
func (rc *ReservationController) UpdateStatusController(c *fiber.Ctx) error {
	req := new(requests.UpdateStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	id := strings.TrimSpace(req.ID)
	status := strings.TrimSpace(req.Status)
	if id == "" || status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Reservation id and status are required",
		})
	}

	if err := rc.Store.UpdateStatus(id, status); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Reservation not found",
			})
		}
		config.Logger.Error("Failed to update reservation status",
			zap.String("reservation_id", id),
			zap.Error(err),
		)
		if errors.Is(err, ledger.ErrLockTimeout) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"message": "Server is busy, please try again",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error updating status",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Status updated successfully",
	})
}
