package middlewares

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic supaya satu submit perkara yang error
// tidak menjatuhkan server. Stack trace hanya dicetak di luar production.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: os.Getenv("APP_ENV") != "production",
	})
}
