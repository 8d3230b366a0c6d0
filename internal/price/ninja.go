package price

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const apiKeyHeader = "X-Api-Key"

// NinjaClient fetches prices from the API Ninjas stockprice endpoint.
type NinjaClient struct {
	client *resty.Client
	apiKey string
}

// NewNinjaClient creates a price client for baseURL. A zero timeout keeps
// the transport default.
func NewNinjaClient(baseURL, apiKey string, timeout time.Duration, debug bool) *NinjaClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetDebug(debug)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &NinjaClient{client: client, apiKey: apiKey}
}

// FetchPrice implements Lookup.
func (c *NinjaClient) FetchPrice(ctx context.Context, symbol string) (Quote, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, c.apiKey).
		SetHeader("Accept", "application/json").
		SetQueryParam("ticker", symbol).
		Get("/stockprice")
	if err != nil {
		return Quote{}, &FetchError{Symbol: symbol, Err: fmt.Errorf("http request: %w", err)}
	}

	if !resp.IsSuccess() {
		return Quote{}, &FetchError{Symbol: symbol, Err: fmt.Errorf("unexpected status %d", resp.StatusCode())}
	}

	p, err := parsePayload(resp.Body())
	if err != nil {
		return Quote{}, &FetchError{Symbol: symbol, Err: err}
	}

	return Quote{Symbol: symbol, Price: p}, nil
}
