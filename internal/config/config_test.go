package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("NINJA_API_KEY", "")

		cfg, err := Load("8000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8000" {
			t.Errorf("expected default port 8000, got %s", cfg.Port)
		}
		if cfg.ServiceName != "stocks" {
			t.Errorf("expected service name stocks, got %s", cfg.ServiceName)
		}
		if cfg.PriceAPI.URL != "https://api.api-ninjas.com/v1" {
			t.Errorf("unexpected price api url %s", cfg.PriceAPI.URL)
		}
		if cfg.PriceAPI.Timeout != 0 {
			t.Errorf("expected zero timeout, got %v", cfg.PriceAPI.Timeout)
		}
		if !cfg.Database.AutoMigrate {
			t.Error("expected auto migrate to default to true")
		}
	})

	t.Run("from_environment", func(t *testing.T) {
		t.Setenv("PORT", "5003")
		t.Setenv("NINJA_API_KEY", "secret")
		t.Setenv("PRICE_API_TIMEOUT", "5s")
		t.Setenv("STOCKS_URL", "http://localhost:5001")
		t.Setenv("DB_HOST", "db")

		cfg, err := Load("8080")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "5003" {
			t.Errorf("expected port 5003, got %s", cfg.Port)
		}
		if cfg.PriceAPI.Key != "secret" {
			t.Errorf("expected api key secret, got %s", cfg.PriceAPI.Key)
		}
		if cfg.PriceAPI.Timeout != 5*time.Second {
			t.Errorf("expected 5s timeout, got %v", cfg.PriceAPI.Timeout)
		}
		if cfg.StocksURL != "http://localhost:5001" {
			t.Errorf("unexpected stocks url %s", cfg.StocksURL)
		}
		if cfg.Database.Host != "db" {
			t.Errorf("expected db host db, got %s", cfg.Database.Host)
		}
	})

	t.Run("invalid_duration", func(t *testing.T) {
		t.Setenv("PRICE_API_TIMEOUT", "soon")

		if _, err := Load("8000"); err == nil {
			t.Fatal("expected error for invalid duration")
		}
	})
}
