package middleware

import (
	"car-rental-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminAuth guards the admin surface with the shared admin key. The
// key is accepted from the `key` query parameter or a `key` field in
// a JSON body, and is compared verbatim. The check runs before any
// ledger access so an unauthorized caller causes no file I/O.
func AdminAuth(adminKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Query("key")
		if provided == "" {
			var body struct {
				Key string `json:"key"`
			}
			if err := c.BodyParser(&body); err == nil {
				provided = body.Key
			}
		}

		if adminKey == "" || provided != adminKey {
			config.Logger.Warn("Admin authentication failed",
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid admin key",
			})
		}

		return c.Next()
	}
}
