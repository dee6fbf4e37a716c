package route

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/users/accounts/controller"
	"timetable_backend/internals/features/users/accounts/service"
)

// AccountAdminRoutes dipasang di group admin yang sudah melewati credential chain.
func AccountAdminRoutes(admin fiber.Router, svc *service.AccountService) {
	ctl := controller.NewAccountController(svc)
	g := admin.Group("/accounts")

	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id/active", ctl.SetActive)
	g.Put("/:id/subjects", ctl.UpdateSubjects)
}
