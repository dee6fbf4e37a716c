// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/academics/subjects/dto"
	"timetable_backend/internals/features/academics/subjects/repository"
	"timetable_backend/internals/features/academics/subjects/service"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type SubjectController struct {
	Svc *service.SubjectService
}

func NewSubjectController(svc *service.SubjectService) *SubjectController {
	return &SubjectController{Svc: svc}
}

/* ============================ CREATE ============================ */
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateSubjectRequest
	if err := helper.ParseBody(c, "subject", &req); err != nil {
		return err
	}
	m, err := ctl.Svc.Create(c.UserContext(), p, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "subject created", dto.ToSubjectResponse(*m))
}

/* ============================ LIST ============================ */
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	semester := 0
	if raw := strings.TrimSpace(c.Query("semester")); raw != "" {
		semester, err = strconv.Atoi(raw)
		if err != nil || semester < 0 {
			return helper.ValidationError(helper.CodeInvalidPayload, "semester", "semester must be a positive integer")
		}
	}
	paging := helper.ResolvePaging(c, 50, 500)
	list, total, err := ctl.Svc.List(c.UserContext(), p, repository.Filter{
		Department: strings.TrimSpace(c.Query("department")),
		Year:       strings.TrimSpace(c.Query("year")),
		Semester:   semester,
		Code:       c.Query("code"),
		Offset:     paging.Offset,
		Limit:      paging.Limit,
	})
	if err != nil {
		return err
	}
	pg := helper.BuildPagination(total, paging, len(list))
	return helper.JsonList(c, "ok", dto.ToSubjectResponses(list), &pg)
}

/* ============================ DETAIL ============================ */
func (ctl *SubjectController) Get(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "ok", dto.ToSubjectResponse(*m))
}

/* ============================ PATCH ============================ */
func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSubjectRequest
	if err := helper.ParseBody(c, "subject", &req); err != nil {
		return err
	}
	m, err := ctl.Svc.Update(c.UserContext(), p, id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "subject updated", dto.ToSubjectResponse(*m))
}

/* ============================ DELETE ============================ */
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "subject deleted", fiber.Map{"id": id})
}
