package main

import (
	"context"
	"fmt"
	"os"

	"campuspulse/internal/platform/config"
	"campuspulse/internal/platform/logger"
	"campuspulse/internal/platform/postgres"
	"campuspulse/internal/review/service"
	"campuspulse/internal/review/store"
	"campuspulse/internal/review/validate"
	"campuspulse/internal/ui"
)

// The terminal client talks to the same review service as the HTTP server.
// Without a Postgres DSN it runs fully in memory, which keeps the menu usable
// for local demos.
func main() {
	cfg := config.Load()
	log := logger.New()
	ctx := context.Background()

	var gateway store.Gateway
	var seeder store.CategorySeeder

	if cfg.PostgresDSN != "" {
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			fmt.Println("Could not reach the database; continuing with in-memory storage.")
			log.Warn("postgres unavailable", "error", err)
		} else {
			defer db.Close()
			pg := store.NewPostgres(db)
			if err := pg.EnsureSchema(ctx); err != nil {
				log.Error("schema setup failed", "error", err)
				os.Exit(1)
			}
			gateway, seeder = pg, pg
			fmt.Println("Database connection established.")
		}
	}
	if gateway == nil {
		mem := store.NewInMemory()
		gateway, seeder = mem, mem
	}

	if err := store.SeedDefaultCategories(ctx, seeder); err != nil {
		log.Error("category seeding failed", "error", err)
		os.Exit(1)
	}

	svc, err := service.New(gateway, validate.New(cfg.Review), cfg.Review, service.WithLogger(log))
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	ui.NewApp(svc).Run(ctx)
}
