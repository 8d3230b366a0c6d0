// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/maybourshan/ci-cd-stocks-service/internal/database"
)

// Config holds application configuration for both services.
type Config struct {
	Env         string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        string `env:"PORT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"stocks"`

	// AdminAPIKey guards POST /admin/shutdown. Empty disables the route.
	AdminAPIKey string `env:"ADMIN_API_KEY"`

	Database database.Config
	PriceAPI PriceAPI

	// StocksURL is where the capital-gains service reads holdings from.
	StocksURL string `env:"STOCKS_URL" envDefault:"http://stocks:8000"`
}

// PriceAPI configures the remote ticker price service.
type PriceAPI struct {
	URL string `env:"PRICE_API_URL" envDefault:"https://api.api-ninjas.com/v1"`
	Key string `env:"NINJA_API_KEY"`
	// Timeout of zero keeps the transport default.
	Timeout time.Duration `env:"PRICE_API_TIMEOUT" envDefault:"0s"`
	Debug   bool          `env:"PRICE_API_DEBUG" envDefault:"false"`
}

// Load reads an optional .env file and parses the environment. defaultPort
// is used when PORT is unset, since each binary listens on its own port.
func Load(defaultPort string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	return cfg, nil
}
