package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maybourshan/ci-cd-stocks-service/internal/services"
)

// ValuationHandler handles current-value requests.
type ValuationHandler struct {
	valuationService services.ValuationServicer
}

// NewValuationHandler creates a new ValuationHandler.
func NewValuationHandler(valuationService services.ValuationServicer) *ValuationHandler {
	return &ValuationHandler{valuationService: valuationService}
}

// GetStockValue handles valuing a single holding.
// @Summary     Holding value
// @Description Current price and value of one holding
// @Tags        valuation
// @Produce     json
// @Param       id path string true "Holding ID"
// @Success     200 {object} services.StockValue "Holding value"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Price unavailable"
// @Router      /stock-value/{id} [get]
func (h *ValuationHandler) GetStockValue(c *gin.Context) {
	value, err := h.valuationService.StockValue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, value)
}

// GetPortfolioValue handles valuing the whole portfolio.
// @Summary     Portfolio value
// @Description Current value of every holding combined; fails if any price is unavailable
// @Tags        valuation
// @Produce     json
// @Success     200 {object} services.PortfolioValue "Portfolio value"
// @Failure     500 {object} ErrorResponse "Price unavailable"
// @Router      /portfolio-value [get]
func (h *ValuationHandler) GetPortfolioValue(c *gin.Context) {
	value, err := h.valuationService.PortfolioValue(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, value)
}
