// file: internals/features/timetables/timetable/controller/timetable_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/timetables/timetable/dto"
	"timetable_backend/internals/features/timetables/timetable/repository"
	"timetable_backend/internals/features/timetables/timetable/service"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type TimetableController struct {
	Svc *service.TimetableService
}

func NewTimetableController(svc *service.TimetableService) *TimetableController {
	return &TimetableController{Svc: svc}
}

/* ============================ SAVE (upsert) ============================ */
func (ctl *TimetableController) Save(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.SaveTimetableRequest
	if err := helper.ParseBody(c, "timetable", &req); err != nil {
		return err
	}
	t, err := ctl.Svc.Save(c.UserContext(), p, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "timetable saved", dto.ToTimetableResponse(*t))
}

/* ============================ LIST ============================ */
func (ctl *TimetableController) List(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 200)
	list, total, err := ctl.Svc.List(c.UserContext(), p, repository.Filter{
		Department: strings.TrimSpace(c.Query("department")),
		Year:       strings.TrimSpace(c.Query("year")),
		Division:   strings.ToUpper(strings.TrimSpace(c.Query("division"))),
		Offset:     paging.Offset,
		Limit:      paging.Limit,
	})
	if err != nil {
		return err
	}
	pg := helper.BuildPagination(total, paging, len(list))
	return helper.JsonList(c, "ok", dto.ToTimetableResponses(list), &pg)
}

/* ============================ DETAIL ============================ */
func (ctl *TimetableController) Get(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	t, err := ctl.Svc.Get(c.UserContext(), p, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToTimetableResponse(*t))
}

/* ============================ DELETE ============================ */
func (ctl *TimetableController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "timetable deleted", fiber.Map{"id": id})
}

/* ============================ END USER ============================ */
func (ctl *TimetableController) Mine(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	list, err := ctl.Svc.ForEndUser(c.UserContext(), p, c.Query("year"), c.Query("division"))
	if err != nil {
		return err
	}
	return helper.JsonList(c, "ok", dto.ToTimetableResponses(list), nil)
}
