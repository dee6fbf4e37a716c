// file: internals/features/timetables/generation/controller/generate_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/features/timetables/generation/dto"
	"timetable_backend/internals/features/timetables/generation/service"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type GenerateController struct {
	Pipeline *service.Pipeline
}

func NewGenerateController(p *service.Pipeline) *GenerateController {
	return &GenerateController{Pipeline: p}
}

// POST /api/a/timetables/generate
func (ctl *GenerateController) Generate(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.GenerateRequest
	if err := helper.ParseBody(c, "generate", &req); err != nil {
		return err
	}
	res, err := ctl.Pipeline.Generate(c.UserContext(), p, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "timetable generated", res)
}
