// Package price resolves ticker symbols to current market prices.
//
// Callers choose how to treat a failed lookup. Strict callers use Lookup
// directly and get an error; tolerant callers use BestEffort, which always
// yields a BestEffortQuote whose price is zero when the lookup failed.
package price

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Lookup fetches the current price of a single symbol. Each call is one
// attempt: no retry and no caching.
type Lookup interface {
	FetchPrice(ctx context.Context, symbol string) (Quote, error)
}

// Quote is a successfully fetched price.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
}

// FetchError describes a failed lookup.
type FetchError struct {
	Symbol string
	Err    error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch price for %s: %v", e.Symbol, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error { return e.Err }

// BestEffortQuote is the result of a lookup whose failure is tolerated.
// Price is zero when Err is set.
type BestEffortQuote struct {
	Symbol string
	Price  decimal.Decimal
	Err    error
}

// Available reports whether the price came from the remote service.
func (q BestEffortQuote) Available() bool { return q.Err == nil }

// BestEffort performs a lookup and substitutes a zero price on failure.
func BestEffort(ctx context.Context, lookup Lookup, symbol string) BestEffortQuote {
	quote, err := lookup.FetchPrice(ctx, symbol)
	if err != nil {
		return BestEffortQuote{Symbol: symbol, Price: decimal.Zero, Err: err}
	}
	return BestEffortQuote{Symbol: symbol, Price: quote.Price}
}
