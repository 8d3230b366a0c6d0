// Package client provides an HTTP client for the stocks service API.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
)

const requestIDHeader = "X-Request-ID"

// StocksClient reads holdings from a running stocks service.
type StocksClient struct {
	client *resty.Client
}

// NewStocksClient creates a client for the stocks service at baseURL. A zero
// timeout keeps the transport default.
func NewStocksClient(baseURL string, timeout time.Duration) *StocksClient {
	client := resty.New().SetBaseURL(strings.TrimRight(baseURL, "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &StocksClient{client: client}
}

// AllHoldings fetches every holding from GET /stocks.
func (c *StocksClient) AllHoldings(ctx context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&holdings)
	if id := logger.RequestIDFrom(ctx); id != "" {
		req.SetHeader(requestIDHeader, id)
	}
	resp, err := req.Get("/stocks")
	if err != nil {
		return nil, fmt.Errorf("fetching holdings: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetching holdings: unexpected status %d", resp.StatusCode())
	}
	if holdings == nil {
		holdings = []models.Holding{}
	}
	return holdings, nil
}
