package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DownloadReservationsController streams the ledger workbook as an
// attachment for offline use.
func (rc *ReservationController) DownloadReservationsController(c *fiber.Ctx) error {
	if !rc.Store.Exists() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "No reservations file exists yet",
		})
	}

	fileName := fmt.Sprintf("reservations-%s.xlsx", time.Now().Format("2006-01-02"))
	return c.Download(rc.Store.Path(), fileName)
}
