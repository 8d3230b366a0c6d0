package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/maybourshan/ci-cd-stocks-service/internal/config"
	"github.com/maybourshan/ci-cd-stocks-service/internal/database"
	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
	"github.com/maybourshan/ci-cd-stocks-service/internal/price"
	"github.com/maybourshan/ci-cd-stocks-service/internal/router"
	"github.com/maybourshan/ci-cd-stocks-service/internal/server"
	"github.com/maybourshan/ci-cd-stocks-service/internal/services"
)

// @title           Stocks Portfolio API
// @version         1.0
// @description     Stock portfolio manager: holdings CRUD and current valuation.

// @BasePath  /

// @securityDefinitions.apikey AdminKeyAuth
// @in header
// @name X-Admin-Key

func main() {
	cfg, err := config.Load("8000")
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel, cfg.ServiceName)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	db := dbManager.DB()
	prices := price.NewNinjaClient(cfg.PriceAPI.URL, cfg.PriceAPI.Key, cfg.PriceAPI.Timeout, cfg.PriceAPI.Debug)
	holdingService := services.NewHoldingService(db)

	engine := router.NewStocksRouter(router.StocksDeps{
		Holdings:    holdingService,
		Valuation:   services.NewValuationService(holdingService, prices),
		Audit:       services.NewAuditService(db),
		DB:          dbManager,
		ServiceName: cfg.ServiceName,
		AdminAPIKey: cfg.AdminAPIKey,
		Shutdown:    stop,
	})

	log.Infof("Starting %s service on port %s", cfg.ServiceName, cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return server.Run(ctx, ":"+cfg.Port, engine)
}
