package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/users/accounts/dto"
	"timetable_backend/internals/features/users/accounts/service"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type AccountController struct {
	Svc *service.AccountService
}

func NewAccountController(svc *service.AccountService) *AccountController {
	return &AccountController{Svc: svc}
}

// POST /api/a/accounts
func (ctl *AccountController) Create(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateAccountRequest
	if err := helper.ParseBody(c, "account", &req); err != nil {
		return err
	}
	m, err := ctl.Svc.Create(c.UserContext(), p, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "account created", dto.ToAccountResponse(*m))
}

// GET /api/a/accounts?role=teacher&department=...
func (ctl *AccountController) List(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 50, 500)
	role := strings.ToLower(strings.TrimSpace(c.Query("role")))
	list, total, err := ctl.Svc.List(c.UserContext(), p, role, c.Query("department"), paging)
	if err != nil {
		return err
	}
	pg := helper.BuildPagination(total, paging, len(list))
	return helper.JsonList(c, "ok", dto.ToAccountResponses(list), &pg)
}

// GET /api/a/accounts/:id
func (ctl *AccountController) Get(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "ok", dto.ToAccountResponse(*m))
}

// PATCH /api/a/accounts/:id/active
func (ctl *AccountController) SetActive(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.SetActiveRequest
	if err := helper.ParseBody(c, "account", &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct("account", &req); err != nil {
		return err
	}
	m, err := ctl.Svc.SetActive(c.UserContext(), p, id, *req.IsActive)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "account updated", dto.ToAccountResponse(*m))
}

// PUT /api/a/accounts/:id/subjects
func (ctl *AccountController) UpdateSubjects(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSubjectsRequest
	if err := helper.ParseBody(c, "account", &req); err != nil {
		return err
	}
	m, err := ctl.Svc.UpdateSubjects(c.UserContext(), p, id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "subjects updated", dto.ToAccountResponse(*m))
}
