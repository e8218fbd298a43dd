package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// AdminEmail and StaffEmails form the static role allow-list: one admin
	// address and a small set of staff addresses. Everyone else is a viewer.
	AdminEmail  string   `env:"ADMIN_EMAIL"`
	StaffEmails []string `env:"STAFF_EMAILS"`

	Salon SalonConfig
	Redis RedisConfig
}

// SalonConfig points at the remote persistence REST API.
type SalonConfig struct {
	BaseURL string `env:"SALON_API_URL, default=http://localhost:8081"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
