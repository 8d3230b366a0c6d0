package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	apperrors "github.com/maybourshan/ci-cd-stocks-service/internal/errors"
	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
	"github.com/maybourshan/ci-cd-stocks-service/internal/services"
)

// StockHandler handles holding CRUD requests.
type StockHandler struct {
	holdingService services.HoldingServicer
	auditService   services.AuditServicer
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(holdingService services.HoldingServicer, auditService services.AuditServicer) *StockHandler {
	return &StockHandler{holdingService: holdingService, auditService: auditService}
}

// HoldingRequest is the request payload for creating or updating a holding.
// Amounts accept JSON numbers or numeric strings.
type HoldingRequest struct {
	Name          *string          `json:"name"`
	Symbol        *string          `json:"symbol" binding:"omitempty,ticker"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" swaggertype:"number"`
	PurchaseDate  *string          `json:"purchase_date" binding:"omitempty,purchase_date"`
	Shares        *decimal.Decimal `json:"shares" swaggertype:"number"`
}

func (r HoldingRequest) input() services.HoldingInput {
	return services.HoldingInput{
		Name:          r.Name,
		Symbol:        r.Symbol,
		PurchasePrice: r.PurchasePrice,
		PurchaseDate:  r.PurchaseDate,
		Shares:        r.Shares,
	}
}

func (r HoldingRequest) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Symbol != nil {
		changes["symbol"] = *r.Symbol
	}
	if r.PurchasePrice != nil {
		changes["purchase_price"] = r.PurchasePrice.String()
	}
	if r.PurchaseDate != nil {
		changes["purchase_date"] = *r.PurchaseDate
	}
	if r.Shares != nil {
		changes["shares"] = r.Shares.String()
	}
	return changes
}

// ListStocks handles listing holdings.
// @Summary     List holdings
// @Description Get every holding, optionally filtered by exact symbol
// @Tags        stocks
// @Produce     json
// @Param       symbol query string false "Exact, case-sensitive symbol"
// @Success     200 {array}  models.Holding "Holdings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	holdings, err := h.holdingService.ListHoldings(c.Request.Context(), services.HoldingFilter{Symbol: c.Query("symbol")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holdings)
}

// CreateStock handles adding a holding.
// @Summary     Create holding
// @Description Add a holding; symbol, purchase_price and shares are required
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Param       request body HoldingRequest true "Holding details"
// @Success     201 {object} IDResponse "Holding created"
// @Failure     400 {object} ErrorResponse "Malformed data or duplicate symbol"
// @Router      /stocks [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	var req HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrInvalidInput)
		return
	}

	holding, err := h.holdingService.CreateHolding(c.Request.Context(), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEntry{
		Action:    models.ActionCreateHolding,
		HoldingID: holding.ID,
		ClientIP:  c.ClientIP(),
		Changes:   req.changes(),
	})

	c.JSON(http.StatusCreated, IDResponse{ID: holding.ID})
}

// GetStock handles fetching a single holding.
// @Summary     Get holding
// @Tags        stocks
// @Produce     json
// @Param       id path string true "Holding ID"
// @Success     200 {object} models.Holding "Holding"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /stocks/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	holding, err := h.holdingService.GetHolding(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holding)
}

// UpdateStock handles a partial update of a holding. The body must be JSON.
// @Summary     Update holding
// @Description Overwrite the supplied fields of a holding
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Holding ID"
// @Param       request body HoldingRequest true "Fields to update"
// @Success     200 {object} IDResponse "Holding updated"
// @Failure     400 {object} ErrorResponse "Malformed data"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     415 {object} ErrorResponse "Body is not JSON"
// @Router      /stocks/{id} [put]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	if c.ContentType() != binding.MIMEJSON {
		respondWithError(c, apperrors.ErrUnsupportedMediaType)
		return
	}

	id := c.Param("id")
	if _, err := h.holdingService.GetHolding(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	var req HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.UpdateHolding(c.Request.Context(), id, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEntry{
		Action:    models.ActionUpdateHolding,
		HoldingID: holding.ID,
		ClientIP:  c.ClientIP(),
		Changes:   req.changes(),
	})

	c.JSON(http.StatusOK, IDResponse{ID: holding.ID})
}

// DeleteStock handles removing a holding.
// @Summary     Delete holding
// @Tags        stocks
// @Param       id path string true "Holding ID"
// @Success     204 "Holding deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /stocks/{id} [delete]
func (h *StockHandler) DeleteStock(c *gin.Context) {
	id := c.Param("id")
	if err := h.holdingService.DeleteHolding(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEntry{
		Action:    models.ActionDeleteHolding,
		HoldingID: id,
		ClientIP:  c.ClientIP(),
	})

	c.Status(http.StatusNoContent)
}
