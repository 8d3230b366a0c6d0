package price

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

// newPriceServer serves body with status for every request and records the
// last ticker and api key it saw.
func newPriceServer(t *testing.T, status int, body string, gotTicker, gotKey *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stockprice" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if gotTicker != nil {
			*gotTicker = r.URL.Query().Get("ticker")
		}
		if gotKey != nil {
			*gotKey = r.Header.Get("X-Api-Key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNinjaClient_FetchPrice(t *testing.T) {
	t.Run("object_response", func(t *testing.T) {
		var ticker, key string
		server := newPriceServer(t, http.StatusOK,
			`{"ticker":"TSLA","name":"Tesla Inc","price":700.25,"exchange":"NASDAQ"}`, &ticker, &key)

		c := NewNinjaClient(server.URL, "test-key", 0, false)
		quote, err := c.FetchPrice(context.Background(), "TSLA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !quote.Price.Equal(decimal.RequireFromString("700.25")) {
			t.Errorf("expected price 700.25, got %s", quote.Price)
		}
		if ticker != "TSLA" {
			t.Errorf("expected ticker query TSLA, got %q", ticker)
		}
		if key != "test-key" {
			t.Errorf("expected api key header test-key, got %q", key)
		}
	})

	t.Run("list_response", func(t *testing.T) {
		server := newPriceServer(t, http.StatusOK,
			`[{"ticker":"MSFT","price":420.55},{"ticker":"MSFT","price":1}]`, nil, nil)

		c := NewNinjaClient(server.URL+"/", "k", 0, false)
		quote, err := c.FetchPrice(context.Background(), "MSFT")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !quote.Price.Equal(decimal.RequireFromString("420.55")) {
			t.Errorf("expected first list element price 420.55, got %s", quote.Price)
		}
	})

	failures := []struct {
		name   string
		status int
		body   string
	}{
		{"empty_list", http.StatusOK, `[]`},
		{"empty_object", http.StatusOK, `{}`},
		{"list_without_price", http.StatusOK, `[{"ticker":"X"}]`},
		{"scalar_body", http.StatusOK, `"oops"`},
		{"invalid_json", http.StatusOK, `{not json`},
		{"bad_request", http.StatusBadRequest, `{"error":"invalid ticker"}`},
		{"server_error", http.StatusInternalServerError, `{"price":1}`},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			server := newPriceServer(t, tc.status, tc.body, nil, nil)

			c := NewNinjaClient(server.URL, "k", 0, false)
			_, err := c.FetchPrice(context.Background(), "XYZ")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("expected *FetchError, got %T", err)
			}
			if fetchErr.Symbol != "XYZ" {
				t.Errorf("expected symbol XYZ, got %q", fetchErr.Symbol)
			}
		})
	}

	t.Run("transport_error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		c := NewNinjaClient(url, "k", 0, false)
		if _, err := c.FetchPrice(context.Background(), "AAPL"); err == nil {
			t.Fatal("expected transport error, got nil")
		}
	})
}

type stubLookup struct {
	prices map[string]string
}

func (s stubLookup) FetchPrice(_ context.Context, symbol string) (Quote, error) {
	p, ok := s.prices[symbol]
	if !ok {
		return Quote{}, &FetchError{Symbol: symbol, Err: errors.New("unknown symbol")}
	}
	return Quote{Symbol: symbol, Price: decimal.RequireFromString(p)}, nil
}

func TestBestEffort(t *testing.T) {
	lookup := stubLookup{prices: map[string]string{"AAPL": "190.10"}}

	q := BestEffort(context.Background(), lookup, "AAPL")
	if !q.Available() {
		t.Fatalf("expected price to be available, got error %v", q.Err)
	}
	if !q.Price.Equal(decimal.RequireFromString("190.10")) {
		t.Errorf("expected 190.10, got %s", q.Price)
	}

	q = BestEffort(context.Background(), lookup, "NOPE")
	if q.Available() {
		t.Fatal("expected unavailable price")
	}
	if !q.Price.IsZero() {
		t.Errorf("expected zero price on failure, got %s", q.Price)
	}
}
