package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	authRepo "timetable_backend/internals/features/users/auth/repository"
)

type CleanupConfig struct {
	CronSchedule string // contoh: "@daily" atau "0 3 * * *"
	TTLDays      int    // baris yang expired lebih lama dari ini dihapus
}

// RunBlacklistCleanup menghapus token blacklist yang sudah lewat TTL.
func RunBlacklistCleanup(ctx context.Context, bl authRepo.Blacklist, ttlDays int, now time.Time) (int64, error) {
	if ttlDays < 0 {
		ttlDays = 0
	}
	before := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)
	n, err := bl.PurgeExpired(ctx, before)
	if err != nil {
		return 0, errors.Wrap(err, "cleanup token_blacklist")
	}
	return n, nil
}

// StartBlacklistCleanupScheduler mendaftarkan job cron; panggil Stop() saat shutdown.
func StartBlacklistCleanupScheduler(bl authRepo.Blacklist, cfg CleanupConfig) (*cron.Cron, error) {
	if cfg.CronSchedule == "" {
		cfg.CronSchedule = "@daily"
	}
	c := cron.New()
	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		log.Println("[CLEANUP] running token_blacklist cleanup...")
		n, err := RunBlacklistCleanup(ctx, bl, cfg.TTLDays, time.Now())
		if err != nil {
			log.Printf("[CLEANUP ERROR] %v", err)
			return
		}
		log.Printf("[CLEANUP] %d expired tokens removed", n)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid cleanup schedule %q", cfg.CronSchedule)
	}
	c.Start()
	log.Printf("[INFO] blacklist cleanup scheduled (%s)", cfg.CronSchedule)
	return c, nil
}
