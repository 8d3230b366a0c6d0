package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the welcome page, health checks and administrative
// shutdown.
type SystemHandler struct {
	serviceName string
	db          Pinger
	shutdown    func()
}

// NewSystemHandler creates a new SystemHandler. db may be nil for services
// without a database. shutdown is called once an authorised shutdown request
// has been accepted.
func NewSystemHandler(serviceName string, db Pinger, shutdown func()) *SystemHandler {
	return &SystemHandler{serviceName: serviceName, db: db, shutdown: shutdown}
}

// Home handles the welcome page.
// @Summary     Welcome
// @Produce     plain
// @Success     200 {string} string "Welcome text"
// @Router      / [get]
func (h *SystemHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, fmt.Sprintf("Welcome to the %s Stock Portfolio Manager!", h.serviceName))
}

// Health handles the health check.
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string "Healthy"
// @Failure     503 {object} map[string]string "Database unreachable"
// @Router      /api/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			logger.Get().Warnw("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Shutdown handles an administrative shutdown request.
// @Summary     Shut down
// @Description Drain in-flight requests and stop the service
// @Tags        admin
// @Produce     json
// @Security    AdminKeyAuth
// @Success     202 {object} map[string]string "Shutdown started"
// @Failure     401 {object} ErrorResponse "Invalid admin key"
// @Failure     503 {object} ErrorResponse "Admin key not configured"
// @Router      /admin/shutdown [post]
func (h *SystemHandler) Shutdown(c *gin.Context) {
	logger.Get().Infow("administrative shutdown requested", "client_ip", c.ClientIP())
	c.JSON(http.StatusAccepted, gin.H{"status": "shutting down"})
	if h.shutdown != nil {
		h.shutdown()
	}
}
