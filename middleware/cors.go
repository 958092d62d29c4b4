package middleware

import (
	"car-rental-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// InitCors applies CORS settings to the app. Origins come from the
// ALLOWED_ORIGINS environment variable (comma-separated); the booking
// form is public, so the default stays open.
func InitCors(app *fiber.App) {
	origins := config.GetEnvOrDefault("ALLOWED_ORIGINS", "*")

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}
