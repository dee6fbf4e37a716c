package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"timetable_backend/internals/constants"
	accountDTO "timetable_backend/internals/features/users/accounts/dto"
	"timetable_backend/internals/features/users/auth/service"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
	authMw "timetable_backend/internals/middlewares/auth"
)

type AuthController struct {
	Svc      *service.AuthService
	Sessions *session.Store
}

func NewAuthController(svc *service.AuthService, sessions *session.Store) *AuthController {
	return &AuthController{Svc: svc, Sessions: sessions}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string                     `json:"access_token"`
	ExpiresAt   time.Time                  `json:"expires_at"`
	Account     accountDTO.AccountResponse `json:"account"`
}

// POST /api/auth/admin/login
// Alur admin: session flag + token sekaligus.
func (ctl *AuthController) AdminLogin(c *fiber.Ctx) error {
	res, err := ctl.login(c, constants.AdminRoles)
	if err != nil {
		return err
	}
	if ctl.Sessions != nil {
		sess, err := ctl.Sessions.Get(c)
		if err != nil {
			return err
		}
		if err := sess.Regenerate(); err != nil {
			return err
		}
		sess.Set(authMw.SessionKeyAccountID, res.Account.ID.String())
		sess.Set(authMw.SessionKeyIsAdmin, true)
		if err := sess.Save(); err != nil {
			return err
		}
	}
	return ctl.respondLogin(c, res)
}

// POST /api/auth/login (teacher/student)
func (ctl *AuthController) UserLogin(c *fiber.Ctx) error {
	res, err := ctl.login(c, constants.EndUserRoles)
	if err != nil {
		return err
	}
	return ctl.respondLogin(c, res)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if err := ctl.Svc.Logout(c.UserContext(), helper.GetRawAccessToken(c)); err != nil {
		return err
	}
	if ctl.Sessions != nil && c.Cookies(authMw.SessionCookieName) != "" {
		if sess, err := ctl.Sessions.Get(c); err == nil {
			if err := sess.Destroy(); err != nil {
				log.Printf("[AUTH] destroy session: %v", err)
			}
		}
	}
	c.ClearCookie(helper.AccessTokenName)
	return helper.JsonOK(c, "logged out", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", p)
}

func (ctl *AuthController) login(c *fiber.Ctx, roles []string) (*service.LoginResult, error) {
	var req LoginRequest
	if err := helper.ParseBody(c, "credential", &req); err != nil {
		return nil, err
	}
	if err := helper.ValidateStruct("credential", &req); err != nil {
		return nil, err
	}
	return ctl.Svc.Login(c.UserContext(), req.Email, req.Password, roles)
}

func (ctl *AuthController) respondLogin(c *fiber.Ctx, res *service.LoginResult) error {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenName,
		Value:    res.AccessToken,
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.JsonOK(c, "login success", LoginResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.ExpiresAt,
		Account:     accountDTO.ToAccountResponse(*res.Account),
	})
}
