package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DatabaseDSN string `envconfig:"DATABASE_DSN" required:"true"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireHrs int    `envconfig:"JWT_EXPIRE_HRS" default:"168"`
	// Network
	HTTPPort       string   `envconfig:"PORT" default:"3000"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	// Seed the database with the demo rental location on startup
	SeedOnStart bool `envconfig:"SEED_ON_START" default:"true"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
