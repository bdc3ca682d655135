package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar aplikasi (urutan penting)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
