package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"skripsiku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar untuk seluruh aplikasi.
// Auth & role check dipasang per route-group di internals/route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
