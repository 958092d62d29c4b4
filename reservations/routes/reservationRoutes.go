package routes

import (
	"car-rental-backend/ledger"
	"car-rental-backend/middleware"
	controllers "car-rental-backend/reservations/controllers"
	"car-rental-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func ReservationRouterInit(
	app *fiber.App,
	store *ledger.Store,
	fileStorage utils.FileStorage,
	adminKey string,
) {
	reservationController := &controllers.ReservationController{
		Store:       store,
		FileStorage: fileStorage,
	}

	admin := middleware.AdminAuth(adminKey)

	app.Post("/submit", reservationController.SubmitReservationController)
	app.Get("/health", reservationController.HealthController)

	app.Get("/auth-check", admin, reservationController.AuthCheckController)
	app.Get("/list-reservations", admin, reservationController.ListReservationsController)
	app.Post("/update-status", admin, reservationController.UpdateStatusController)
	app.Get("/download-reservations", admin, reservationController.DownloadReservationsController)
}
