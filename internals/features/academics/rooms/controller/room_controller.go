// file: internals/features/academics/rooms/controller/room_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/academics/rooms/dto"
	"timetable_backend/internals/features/academics/rooms/repository"
	"timetable_backend/internals/features/academics/rooms/service"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type RoomController struct {
	Svc *service.RoomService
}

func NewRoomController(svc *service.RoomService) *RoomController {
	return &RoomController{Svc: svc}
}

/* ============================ CREATE ============================ */
func (ctl *RoomController) Create(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateRoomRequest
	if err := helper.ParseBody(c, "room", &req); err != nil {
		return err
	}
	m, err := ctl.Svc.Create(c.UserContext(), p, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "room created", dto.ToRoomResponse(*m))
}

/* ============================ LIST ============================ */
func (ctl *RoomController) List(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 50, 500)
	list, total, err := ctl.Svc.List(c.UserContext(), p, repository.Filter{
		Department:  strings.TrimSpace(c.Query("department")),
		Type:        strings.TrimSpace(c.Query("type")),
		PrimaryYear: strings.TrimSpace(c.Query("primary_year")),
		Offset:      paging.Offset,
		Limit:       paging.Limit,
	})
	if err != nil {
		return err
	}
	pg := helper.BuildPagination(total, paging, len(list))
	return helper.JsonList(c, "ok", dto.ToRoomResponses(list), &pg)
}

/* ============================ DETAIL ============================ */
func (ctl *RoomController) Get(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.Svc.Get(c.UserContext(), p, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToRoomResponse(*m))
}

/* ============================ PATCH ============================ */
func (ctl *RoomController) Patch(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateRoomRequest
	if err := helper.ParseBody(c, "room", &req); err != nil {
		return err
	}
	m, err := ctl.Svc.Update(c.UserContext(), p, id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "room updated", dto.ToRoomResponse(*m))
}

/* ============================ DELETE ============================ */
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.Svc.Delete(c.UserContext(), p, id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "room deleted", fiber.Map{"id": id})
}
