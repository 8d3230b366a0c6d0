// Package router builds the Gin engines for the stocks and capital-gains
// services.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/maybourshan/ci-cd-stocks-service/internal/docs" // Import swagger docs
	"github.com/maybourshan/ci-cd-stocks-service/internal/handlers"
	"github.com/maybourshan/ci-cd-stocks-service/internal/middleware"
	"github.com/maybourshan/ci-cd-stocks-service/internal/services"
	"github.com/maybourshan/ci-cd-stocks-service/internal/validator"
)

// StocksDeps are the collaborators of the stocks service.
type StocksDeps struct {
	Holdings    services.HoldingServicer
	Valuation   services.ValuationServicer
	Audit       services.AuditServicer
	DB          handlers.Pinger
	ServiceName string
	AdminAPIKey string
	// Shutdown is called after an authorised POST /admin/shutdown.
	Shutdown func()
}

// GainsDeps are the collaborators of the capital-gains service.
type GainsDeps struct {
	Gains       services.GainsServicer
	ServiceName string
	AdminAPIKey string
	Shutdown    func()
}

// NewStocksRouter builds the stocks service routes.
func NewStocksRouter(deps StocksDeps) *gin.Engine {
	r := newEngine()

	stockHandler := handlers.NewStockHandler(deps.Holdings, deps.Audit)
	valuationHandler := handlers.NewValuationHandler(deps.Valuation)
	systemHandler := handlers.NewSystemHandler(deps.ServiceName, deps.DB, deps.Shutdown)

	r.GET("/", systemHandler.Home)
	r.GET("/api/health", systemHandler.Health)
	r.POST("/admin/shutdown", middleware.AdminAuth(deps.AdminAPIKey), systemHandler.Shutdown)

	stocks := r.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.POST("", stockHandler.CreateStock)
	stocks.GET("/:id", stockHandler.GetStock)
	stocks.PUT("/:id", stockHandler.UpdateStock)
	stocks.DELETE("/:id", stockHandler.DeleteStock)

	r.GET("/stock-value/:id", valuationHandler.GetStockValue)
	r.GET("/portfolio-value", valuationHandler.GetPortfolioValue)

	return r
}

// NewGainsRouter builds the capital-gains service routes.
func NewGainsRouter(deps GainsDeps) *gin.Engine {
	r := newEngine()

	gainsHandler := handlers.NewGainsHandler(deps.Gains)
	systemHandler := handlers.NewSystemHandler(deps.ServiceName, nil, deps.Shutdown)

	r.GET("/api/health", systemHandler.Health)
	r.POST("/admin/shutdown", middleware.AdminAuth(deps.AdminAPIKey), systemHandler.Shutdown)
	r.GET("/capital-gains", gainsHandler.GetCapitalGains)

	return r
}

// newEngine returns an engine with the shared middleware chain and docs.
func newEngine() *gin.Engine {
	validator.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.ErrorHandler())
	r.NoRoute(middleware.NoRoute())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}
