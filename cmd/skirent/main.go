package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/patrykkrzal/skirent/db"
	"github.com/patrykkrzal/skirent/internal/auth"
	"github.com/patrykkrzal/skirent/internal/config"
	"github.com/patrykkrzal/skirent/internal/logger"
	"github.com/patrykkrzal/skirent/internal/router"
	"github.com/patrykkrzal/skirent/internal/seed"
	"github.com/patrykkrzal/skirent/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not loaded: %v", err)
	}

	zl := logger.New()
	defer func() { _ = zl.Sync() }()

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := auth.Init(cfg.JWTSecret, cfg.JWTExpireHrs); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	st := store.NewGormStore(db.DB)

	if cfg.SeedOnStart {
		if err := seed.Run(context.Background(), st); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	r := router.NewRouter(st, cfg.AllowedOrigins)

	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
