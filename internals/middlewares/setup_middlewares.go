package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "github.com/syrlramadhan/desa-tirongan-atas/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global urut:
// recovery → cors → logger → rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
