package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"timetable_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan tetap.
func SetupMiddlewares(app *fiber.App, corsOrigins string, requestTimeout time.Duration) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID(requestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(corsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
