// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"timetable_backend/internals/features/users/auth/controller"
	"timetable_backend/internals/features/users/auth/service"
	rateLimiter "timetable_backend/internals/middlewares"
)

// AuthRoutes: /api/auth. adminAuth & userAuth adalah middleware credential chain.
func AuthRoutes(app fiber.Router, svc *service.AuthService, sessions *session.Store, adminAuth, userAuth fiber.Handler) {
	ctl := controller.NewAuthController(svc, sessions)

	g := app.Group("/api/auth")

	// Public
	g.Post("/admin/login", rateLimiter.LoginRateLimiter(), ctl.AdminLogin)
	g.Post("/login", rateLimiter.LoginRateLimiter(), ctl.UserLogin)
	g.Post("/logout", ctl.Logout)

	// Protected
	g.Get("/me", adminAuth, ctl.Me)
	g.Get("/u/me", userAuth, ctl.Me)
}
