// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomRepo "timetable_backend/internals/features/academics/rooms/repository"
	roomRoute "timetable_backend/internals/features/academics/rooms/route"
	roomService "timetable_backend/internals/features/academics/rooms/service"
	subjectRepo "timetable_backend/internals/features/academics/subjects/repository"
	subjectRoute "timetable_backend/internals/features/academics/subjects/route"
	subjectService "timetable_backend/internals/features/academics/subjects/service"
	generationRoute "timetable_backend/internals/features/timetables/generation/route"
	generationService "timetable_backend/internals/features/timetables/generation/service"
	timetableRepo "timetable_backend/internals/features/timetables/timetable/repository"
	timetableRoute "timetable_backend/internals/features/timetables/timetable/route"
	timetableService "timetable_backend/internals/features/timetables/timetable/service"
	accountRepo "timetable_backend/internals/features/users/accounts/repository"
	accountRoute "timetable_backend/internals/features/users/accounts/route"
	accountService "timetable_backend/internals/features/users/accounts/service"
	authRepo "timetable_backend/internals/features/users/auth/repository"
	authRoute "timetable_backend/internals/features/users/auth/route"
	authService "timetable_backend/internals/features/users/auth/service"
	authMw "timetable_backend/internals/middlewares/auth"
)

var startTime time.Time

// Deps: store + kolaborator eksternal. Dibangun dari gorm atau memory.
type Deps struct {
	Accounts   accountRepo.Repository
	Blacklist  authRepo.Blacklist
	Rooms      roomRepo.Repository
	Subjects   subjectRepo.Repository
	Timetables timetableRepo.Repository
	Solver     generationService.Solver

	Secret     string
	AccessTTL  time.Duration
	SessionTTL time.Duration

	// Ping dipakai /health; nil = selalu sehat (mode memory)
	Ping func() error
}

func NewGormDeps(db *gorm.DB, secret string) Deps {
	return Deps{
		Accounts:   accountRepo.NewGormRepository(db),
		Blacklist:  authRepo.NewGormBlacklist(db, secret),
		Rooms:      roomRepo.NewGormRepository(db),
		Subjects:   subjectRepo.NewGormRepository(db),
		Timetables: timetableRepo.NewGormRepository(db),
		Secret:     secret,
	}
}

func NewMemoryDeps(secret string) Deps {
	return Deps{
		Accounts:   accountRepo.NewMemoryRepository(),
		Blacklist:  authRepo.NewMemoryBlacklist(secret),
		Rooms:      roomRepo.NewMemoryRepository(),
		Subjects:   subjectRepo.NewMemoryRepository(),
		Timetables: timetableRepo.NewMemoryRepository(),
		Secret:     secret,
	}
}

// Services: hasil wiring, dipakai main (seed) dan test.
type Services struct {
	Auth       *authService.AuthService
	Accounts   *accountService.AccountService
	Rooms      *roomService.RoomService
	Subjects   *subjectService.SubjectService
	Timetables *timetableService.TimetableService
	Pipeline   *generationService.Pipeline
}

func SetupRoutes(app *fiber.App, d Deps) *Services {
	startTime = time.Now()

	svc := &Services{
		Auth: &authService.AuthService{
			Accounts:  d.Accounts,
			Blacklist: d.Blacklist,
			Secret:    d.Secret,
			AccessTTL: d.AccessTTL,
		},
		Accounts:   accountService.NewAccountService(d.Accounts),
		Rooms:      roomService.NewRoomService(d.Rooms),
		Subjects:   subjectService.NewSubjectService(d.Subjects),
		Timetables: timetableService.NewTimetableService(d.Timetables),
	}
	svc.Pipeline = &generationService.Pipeline{
		Rooms:      svc.Rooms,
		Teachers:   svc.Accounts,
		Subjects:   svc.Subjects,
		Timetables: svc.Timetables,
		Solver:     d.Solver,
	}

	sessionTTL := d.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	sessions := authMw.NewSessionStore(sessionTTL)
	opts := authMw.Options{
		Secret:    d.Secret,
		Accounts:  d.Accounts,
		Sessions:  sessions,
		Blacklist: svc.Auth.IsBlacklisted,
	}
	adminAuth := authMw.Authenticate(authMw.AdminChain(opts), sessions)
	userAuth := authMw.Authenticate(authMw.UserChain(opts), nil)

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, d.Ping)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, svc.Auth, sessions, adminAuth, userAuth)

	// ===================== ADMIN (per department) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", adminAuth)
	accountRoute.AccountAdminRoutes(admin, svc.Accounts)
	roomRoute.RoomsAdminRoutes(admin, svc.Rooms)
	subjectRoute.SubjectsAdminRoutes(admin, svc.Subjects)
	generationRoute.GenerateRoutes(admin, svc.Pipeline)
	timetableRoute.TimetableAdminRoutes(admin, svc.Timetables)

	// ===================== USER (teacher / student) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", userAuth)
	timetableRoute.TimetableUserRoutes(user, svc.Timetables)

	return svc
}
