package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
)

// HoldingFilter holds optional filter parameters for listing holdings.
type HoldingFilter struct {
	// Symbol filters by exact, case-sensitive match when non-empty.
	Symbol string
}

// HoldingInput carries client-supplied holding fields. A nil field was not
// present in the request.
type HoldingInput struct {
	Name          *string
	Symbol        *string
	PurchasePrice *decimal.Decimal
	PurchaseDate  *string
	Shares        *decimal.Decimal
}

// HoldingServicer defines the contract for the holdings store.
type HoldingServicer interface {
	ListHoldings(ctx context.Context, filter HoldingFilter) ([]models.Holding, error)
	CreateHolding(ctx context.Context, input HoldingInput) (*models.Holding, error)
	GetHolding(ctx context.Context, id string) (*models.Holding, error)
	UpdateHolding(ctx context.Context, id string, input HoldingInput) (*models.Holding, error)
	DeleteHolding(ctx context.Context, id string) error
}

// StockValue is the current market value of one holding.
type StockValue struct {
	Symbol     string          `json:"symbol"`
	Ticker     decimal.Decimal `json:"ticker"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// PortfolioValue is the current market value of every holding combined.
type PortfolioValue struct {
	Date           string          `json:"date"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
}

// ValuationServicer values holdings at current prices. Any price lookup
// failure fails the whole request.
type ValuationServicer interface {
	StockValue(ctx context.Context, id string) (*StockValue, error)
	PortfolioValue(ctx context.Context) (*PortfolioValue, error)
}

// GainsFilter holds the exclusive share-count bounds for capital gains.
type GainsFilter struct {
	SharesGreaterThan *int64
	SharesLessThan    *int64
}

// GainRecord is the capital gain of one holding.
type GainRecord struct {
	Symbol       string          `json:"symbol"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Gain         decimal.Decimal `json:"gain"`
}

// CapitalGains is the capital gains report across the filtered holdings.
type CapitalGains struct {
	TotalGains decimal.Decimal `json:"total_gains"`
	Details    []GainRecord    `json:"details"`
}

// GainsServicer computes capital gains. Price lookup failures are tolerated
// and counted as a zero price.
type GainsServicer interface {
	ComputeGains(ctx context.Context, filter GainsFilter) (*CapitalGains, error)
}

// HoldingSource supplies every holding to the gains calculator, either from
// the local store or from a remote stocks service.
type HoldingSource interface {
	AllHoldings(ctx context.Context) ([]models.Holding, error)
}

// AuditEntry describes one holding mutation. Changes holds the request
// fields that were supplied, keyed by their wire names.
type AuditEntry struct {
	Action    string
	HoldingID string
	ClientIP  string
	Changes   map[string]interface{}
}

// AuditServicer records holding mutations. Recording never fails the caller.
type AuditServicer interface {
	Record(entry AuditEntry)
}
