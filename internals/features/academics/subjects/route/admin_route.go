package route

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/academics/subjects/controller"
	"timetable_backend/internals/features/academics/subjects/service"
)

func SubjectsAdminRoutes(admin fiber.Router, svc *service.SubjectService) {
	ctl := controller.NewSubjectController(svc)
	g := admin.Group("/subjects")

	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id", ctl.Patch)
	g.Put("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
