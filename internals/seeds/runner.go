package seeds

import (
	"context"
	"log"

	"timetable_backend/internals/features/users/accounts/repository"
	accountSeeds "timetable_backend/internals/seeds/accounts"
)

type Config struct {
	SuperadminEmail    string
	SuperadminPassword string
	AccountsFile       string // opsional, JSON daftar akun demo
}

func RunAllSeeds(ctx context.Context, accounts repository.Repository, cfg Config) {
	//* Superadmin
	if err := accountSeeds.SeedSuperadmin(ctx, accounts, cfg.SuperadminEmail, cfg.SuperadminPassword); err != nil {
		log.Printf("[WARN] superadmin seed failed: %v", err)
	}

	//* Accounts
	if cfg.AccountsFile != "" {
		if err := accountSeeds.SeedAccountsFromJSON(ctx, accounts, cfg.AccountsFile); err != nil {
			log.Printf("[WARN] account seed failed: %v", err)
		}
	}
}
