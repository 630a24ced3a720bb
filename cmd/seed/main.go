package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/mendly/mendly-backend/config"
	"github.com/mendly/mendly-backend/internal/application"
	"github.com/mendly/mendly-backend/internal/domain/entity"
	pginfra "github.com/mendly/mendly-backend/internal/infrastructure/postgres"
	"github.com/mendly/mendly-backend/pkg/helpers"
)

// Seeds one admin from SEED_ADMIN_NAME / SEED_ADMIN_PASSWORD. Running it again
// is a no-op once the admin exists.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	if cfg.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
		DSN:         cfg.PostgresDSN(),
		MaxConns:    2,
		MinConns:    0,
		MaxConnLife: cfg.DBMaxConnLife,
		AppName:     cfg.AppName + "-seed",
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	hasher, err := helpers.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("invalid bcrypt cost: %v", err)
	}
	svc := application.NewPrincipalService(pginfra.NewPrincipalRepository(pool), hasher, helpers.RandomTokenIssuer{}, nil, nil, logger, cfg.AppName)

	admin, err := svc.CreateAdmin(ctx, cfg.SeedAdminName, cfg.SeedAdminPassword)
	switch {
	case errors.Is(err, entity.ErrConflict):
		logger.WithField("adminname", cfg.SeedAdminName).Info("admin already exists")
	case err != nil:
		log.Fatalf("failed to seed admin: %v", err)
	default:
		logger.WithField("id", admin.ID).WithField("adminname", admin.Name).Info("seeded admin")
	}
}
