package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/maybourshan/ci-cd-stocks-service/internal/client"
	"github.com/maybourshan/ci-cd-stocks-service/internal/config"
	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
	"github.com/maybourshan/ci-cd-stocks-service/internal/price"
	"github.com/maybourshan/ci-cd-stocks-service/internal/router"
	"github.com/maybourshan/ci-cd-stocks-service/internal/server"
	"github.com/maybourshan/ci-cd-stocks-service/internal/services"
)

const serviceName = "capital-gains"

func main() {
	cfg, err := config.Load("8080")
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel, serviceName)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prices := price.NewNinjaClient(cfg.PriceAPI.URL, cfg.PriceAPI.Key, cfg.PriceAPI.Timeout, cfg.PriceAPI.Debug)
	stocks := client.NewStocksClient(cfg.StocksURL, cfg.PriceAPI.Timeout)

	engine := router.NewGainsRouter(router.GainsDeps{
		Gains:       services.NewGainsService(stocks, prices),
		ServiceName: serviceName,
		AdminAPIKey: cfg.AdminAPIKey,
		Shutdown:    stop,
	})

	logger.Get().Infow("starting service", "port", cfg.Port, "stocks_url", cfg.StocksURL)
	return server.Run(ctx, ":"+cfg.Port, engine)
}
