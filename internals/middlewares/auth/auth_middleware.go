// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"timetable_backend/internals/constants"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type Options struct {
	Secret    string
	Accounts  AccountFinder
	Sessions  *session.Store
	Blacklist BlacklistChecker
}

// AdminChain: session dulu, lalu token. Role admin/superadmin.
func AdminChain(o Options) *Chain {
	return NewChain(
		&SessionStrategy{Accounts: o.Accounts, AllowedRoles: constants.AdminRoles},
		&TokenStrategy{Secret: o.Secret, Accounts: o.Accounts, AllowedRoles: constants.AdminRoles, Blacklist: o.Blacklist},
	)
}

// UserChain: hanya token, untuk teacher/student.
func UserChain(o Options) *Chain {
	return NewChain(
		&TokenStrategy{Secret: o.Secret, Accounts: o.Accounts, AllowedRoles: constants.EndUserRoles, Blacklist: o.Blacklist},
	)
}

// Authenticate menjalankan chain dan menyimpan Principal di Locals.
// store boleh nil (chain tanpa session).
func Authenticate(chain *Chain, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cred Credentials
		if err := sessionCredentials(c, store, &cred); err != nil {
			log.Printf("[AUTH] session lookup failed: %v", err)
		}
		cred.Token = helper.GetRawAccessToken(c)

		r := chain.Verify(c.UserContext(), cred)
		if r.Outcome != Resolved {
			log.Printf("[AUTH] rejected id=%v path=%s reason=%s", c.Locals("reqid"), c.Path(), r.Err.Code)
			return r.Err
		}
		c.Locals(helper.LocRawToken, cred.Token)
		helperAuth.SetPrincipal(c, r.Principal)
		return c.Next()
	}
}
