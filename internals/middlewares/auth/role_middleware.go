package auth

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/constants"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

// OnlyRoles mengizinkan akses jika role principal ada di roles.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := helperAuth.GetPrincipal(c)
		if err != nil {
			return err
		}
		if constants.HasRole(roles, p.Role) {
			return c.Next()
		}
		if customMessage == "" {
			customMessage = "you are not authorized to access this resource"
		}
		return helper.AuthorizationError(helper.CodeForbiddenRole, "role", customMessage)
	}
}
