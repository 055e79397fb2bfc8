package main

import (
	"context"
	"log/slog"
	"os"

	"jobportal/internal/config"
	"jobportal/internal/db"
	"jobportal/internal/logger"
	"jobportal/internal/repository"
	"jobportal/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	log.Info("starting seed script")
	if err := run(cfg, log); err != nil {
		log.Error("seed failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)
	log.Info("connected to database", "driver", cfg.DBDriver)

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	log.Info("database migrations completed")

	seeder := service.NewSeedService(
		repository.NewUserRepository(gormDB),
		repository.NewCompanyRepository(gormDB),
		repository.NewJobRepository(gormDB),
		repository.NewApplicationRepository(gormDB),
	)

	result, err := seeder.Seed(context.Background())
	if err != nil {
		return err
	}

	log.Info("seed complete",
		"users", result.Users,
		"companies", result.Companies,
		"jobs", result.Jobs,
		"applications", result.Applications,
	)
	return nil
}
