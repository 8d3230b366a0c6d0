package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
	"github.com/maybourshan/ci-cd-stocks-service/internal/price"
)

// gainsService computes capital gains against current prices.
type gainsService struct {
	source HoldingSource
	prices price.Lookup
}

// NewGainsService creates a new GainsServicer.
func NewGainsService(source HoldingSource, prices price.Lookup) GainsServicer {
	return &gainsService{source: source, prices: prices}
}

// ComputeGains reports the gain of every holding inside the share bounds.
// An unreachable holdings source yields an empty report and a failed price
// counts as zero. Only context cancellation is returned as an error.
func (s *gainsService) ComputeGains(ctx context.Context, filter GainsFilter) (*CapitalGains, error) {
	holdings, err := s.source.AllHoldings(ctx)
	if err != nil {
		logger.Get().Warnw("holdings source unavailable, reporting no gains", "error", err)
		holdings = nil
	}

	result := &CapitalGains{TotalGains: decimal.Zero, Details: []GainRecord{}}
	total := decimal.Zero
	for _, holding := range holdings {
		if !filter.matches(holding.Shares) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		quote := price.BestEffort(ctx, s.prices, holding.Symbol)
		if !quote.Available() {
			logger.Get().Warnw("price lookup failed, counting as zero", "symbol", holding.Symbol, "error", quote.Err)
		}

		gain := quote.Price.Sub(holding.PurchasePrice).Mul(decimal.NewFromInt(holding.Shares))
		total = total.Add(gain)
		result.Details = append(result.Details, GainRecord{
			Symbol:       holding.Symbol,
			CurrentPrice: quote.Price,
			Gain:         models.RoundMoney(gain),
		})
	}
	result.TotalGains = models.RoundMoney(total)

	return result, nil
}

// matches applies the exclusive share-count bounds.
func (f GainsFilter) matches(shares int64) bool {
	if f.SharesGreaterThan != nil && shares <= *f.SharesGreaterThan {
		return false
	}
	if f.SharesLessThan != nil && shares >= *f.SharesLessThan {
		return false
	}
	return true
}
