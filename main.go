package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/configs"
	database "timetable_backend/internals/databases"
	roomModel "timetable_backend/internals/features/academics/rooms/model"
	subjectModel "timetable_backend/internals/features/academics/subjects/model"
	"timetable_backend/internals/features/timetables/generation/solver"
	timetableModel "timetable_backend/internals/features/timetables/timetable/model"
	accountModel "timetable_backend/internals/features/users/accounts/model"
	authModel "timetable_backend/internals/features/users/auth/model"
	scheduler "timetable_backend/internals/features/users/auth/scheduler"
	helper "timetable_backend/internals/helpers"
	middlewares "timetable_backend/internals/middlewares"
	routes "timetable_backend/internals/route"
	"timetable_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, configs.GetEnv("CORS_ORIGINS"), configs.GetDuration("REQUEST_TIMEOUT"))
	app.Use(middlewares.GlobalRateLimiter())

	// 🔌 store: postgres (default) atau memory untuk demo/dev
	var deps routes.Deps
	if strings.EqualFold(configs.GetEnv("DB_DRIVER"), "memory") {
		log.Println("[WARN] DB_DRIVER=memory, data is lost on restart")
		deps = routes.NewMemoryDeps(configs.JWTSecret)
	} else {
		database.ConnectDB()
		database.TunePool()
		if err := database.Migrate(
			&accountModel.AccountModel{},
			&authModel.TokenBlacklist{},
			&roomModel.RoomModel{},
			&subjectModel.SubjectModel{},
			&timetableModel.TimetableModel{},
		); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		database.WarmUpQueries()
		deps = routes.NewGormDeps(database.DB, configs.JWTSecret)
		deps.Ping = database.Ping
	}
	deps.AccessTTL = configs.AccessTokenTTL
	deps.SessionTTL = configs.SessionTTL
	deps.Solver = solver.NewClient(configs.SchedulerURL, solver.WithTimeout(configs.SchedulerTimeout))

	// ✅ Routes
	routes.SetupRoutes(app, deps)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	seeds.RunAllSeeds(seedCtx, deps.Accounts, seeds.Config{
		SuperadminEmail:    configs.GetEnv("SEED_SUPERADMIN_EMAIL"),
		SuperadminPassword: configs.GetEnv("SEED_SUPERADMIN_PASSWORD"),
		AccountsFile:       configs.GetEnv("SEED_ACCOUNTS_FILE"),
	})
	seedCancel()

	// ⏱ scheduler setelah store siap
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(deps.Blacklist, scheduler.CleanupConfig{
		CronSchedule: configs.GetEnv("CLEANUP_CRON"),
		TTLDays:      configs.GetInt("TOKEN_BLACKLIST_TTL_DAYS"),
	})
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// 🔒 Keep-Alive & timeout koneksi server (write > SCHEDULER_TIMEOUT)
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = configs.SchedulerTimeout + 15*time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	<-cleanup.Stop().Done()
	database.Close()
}
