package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ValidationError(CodeInvalidPayload, name, name+" must be a valid uuid")
	}
	return id, nil
}

// ParseBody: body JSON tidak valid → ValidationError(InvalidPayload).
func ParseBody(c *fiber.Ctx, subject string, out any) error {
	if err := c.BodyParser(out); err != nil {
		return ValidationError(CodeInvalidPayload, subject, "invalid request body")
	}
	return nil
}
