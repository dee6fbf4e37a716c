package helper

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler dipasang di fiber.Config. AppError dirender apa adanya,
// *fiber.Error memakai status bawaannya, sisanya jadi 500 tanpa detail internal.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if ae, ok := AsAppError(err); ok {
		if ae.Kind == KindInternal {
			log.Printf("[ERROR] id=%v %s %s: %v", c.Locals("reqid"), c.Method(), c.Path(), err)
		}
		return JsonAppError(c, ae)
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] id=%v %s %s: %v", c.Locals("reqid"), c.Method(), c.Path(), err)
	return JsonAppError(c, InternalError("unexpected error"))
}
