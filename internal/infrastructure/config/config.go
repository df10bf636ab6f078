package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config carries all process configuration, read from the environment.
type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=warn"`

	// SecretKey signs session tokens. When empty a random process-lifetime
	// key is generated, so tokens do not survive a restart (dev mode).
	SecretKey string        `env:"EPICEVENTS_SECRET_KEY"`
	TokenTTL  time.Duration `env:"EPICEVENTS_TOKEN_TTL, default=24h"`
	// TokenFile overrides the default ~/.epicevents/token location.
	TokenFile string `env:"EPICEVENTS_TOKEN_FILE"`

	DatabaseURL string `env:"DATABASE_URL, default=postgres://localhost:5432/epicevents?sslmode=disable"`
}

// Load reads .env (when present) and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
