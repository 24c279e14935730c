package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all runtime settings, parsed from the environment
type Config struct {
	ServerAddress string        `env:"SERVER_ADDRESS" envDefault:":8080"`
	TokenSecret   string        `env:"TOKEN_SECRET" envDefault:"dev-only-secret"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"5h"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`
	FrontendURL   string        `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
}

func NewConfig() (*Config, error) {
	config := &Config{}

	err := env.Parse(config)
	if err != nil {
		err = fmt.Errorf("config.NewConfig: %w", err)
	}
	return config, err
}
