package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/maybourshan/ci-cd-stocks-service/internal/errors"
	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
	"github.com/maybourshan/ci-cd-stocks-service/internal/price"
)

// portfolioDateLayout formats the portfolio valuation date as DD-MM-YYYY.
const portfolioDateLayout = "02-01-2006"

// valuationService values holdings at current prices.
type valuationService struct {
	holdings HoldingServicer
	prices   price.Lookup
	now      func() time.Time
}

// NewValuationService creates a new ValuationServicer.
func NewValuationService(holdings HoldingServicer, prices price.Lookup) ValuationServicer {
	return &valuationService{holdings: holdings, prices: prices, now: time.Now}
}

// StockValue returns the current value of one holding.
func (s *valuationService) StockValue(ctx context.Context, id string) (*StockValue, error) {
	holding, err := s.holdings.GetHolding(ctx, id)
	if err != nil {
		return nil, err
	}

	quote, err := s.prices.FetchPrice(ctx, holding.Symbol)
	if err != nil {
		return nil, priceUnavailable(holding.Symbol, err)
	}

	return &StockValue{
		Symbol:     holding.Symbol,
		Ticker:     quote.Price,
		StockValue: models.RoundMoney(quote.Price.Mul(decimal.NewFromInt(holding.Shares))),
	}, nil
}

// PortfolioValue sums the current value of every holding. The first price
// failure aborts the whole valuation.
func (s *valuationService) PortfolioValue(ctx context.Context) (*PortfolioValue, error) {
	holdings, err := s.holdings.ListHoldings(ctx, HoldingFilter{})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, holding := range holdings {
		quote, err := s.prices.FetchPrice(ctx, holding.Symbol)
		if err != nil {
			return nil, priceUnavailable(holding.Symbol, err)
		}
		total = total.Add(quote.Price.Mul(decimal.NewFromInt(holding.Shares)))
	}

	return &PortfolioValue{
		Date:           s.now().Format(portfolioDateLayout),
		PortfolioValue: models.RoundMoney(total),
	}, nil
}

func priceUnavailable(symbol string, cause error) error {
	logger.Get().Warnw("price lookup failed", "symbol", symbol, "error", cause)
	appErr := apperrors.WithMessage(apperrors.ErrPriceUnavailable, "Unable to fetch stock price for "+symbol)
	appErr.Internal = cause
	return appErr
}
