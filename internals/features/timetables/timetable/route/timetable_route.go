package route

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/timetables/timetable/controller"
	"timetable_backend/internals/features/timetables/timetable/service"
)

// TimetableAdminRoutes: /generate dipasang oleh paket generation pada group yang sama.
func TimetableAdminRoutes(admin fiber.Router, svc *service.TimetableService) {
	ctl := controller.NewTimetableController(svc)
	g := admin.Group("/timetables")

	g.Get("/", ctl.List)
	g.Post("/save", ctl.Save)
	g.Get("/:id", ctl.Get)
	g.Delete("/:id", ctl.Delete)
}

func TimetableUserRoutes(user fiber.Router, svc *service.TimetableService) {
	ctl := controller.NewTimetableController(svc)
	user.Get("/timetables", ctl.Mine)
}
