package route

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/academics/rooms/controller"
	"timetable_backend/internals/features/academics/rooms/service"
)

// RoomsAdminRoutes: CRUD room untuk admin. Mount:
//
//	admin := app.Group("/api/a", adminAuth)
//	route.RoomsAdminRoutes(admin, svc)
func RoomsAdminRoutes(admin fiber.Router, svc *service.RoomService) {
	ctl := controller.NewRoomController(svc)
	g := admin.Group("/rooms")

	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
