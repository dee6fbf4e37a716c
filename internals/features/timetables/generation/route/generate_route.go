package route

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/timetables/generation/controller"
	"timetable_backend/internals/features/timetables/generation/service"
	helperAuth "timetable_backend/internals/helpers/auth"
	"timetable_backend/internals/middlewares"
)

// GenerateRoutes memasang POST /timetables/generate pada group admin.
func GenerateRoutes(admin fiber.Router, pipeline *service.Pipeline) {
	ctl := controller.NewGenerateController(pipeline)
	admin.Post("/timetables/generate",
		middlewares.GenerateRateLimiter(),
		helperAuth.BlockSuperadminMiddleware(),
		ctl.Generate,
	)
}
