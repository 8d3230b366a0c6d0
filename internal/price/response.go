package price

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// payloadShape tags which of the two response layouts the API returned.
type payloadShape int

const (
	shapeUnknown payloadShape = iota
	shapeObject
	shapeList
)

// tickerQuote is one quote object as returned by the price API.
type tickerQuote struct {
	Ticker string           `json:"ticker"`
	Name   string           `json:"name"`
	Price  *decimal.Decimal `json:"price"`
}

// quotePayload holds a decoded response body. The API answers either with a
// single quote object or with a list of quote objects.
type quotePayload struct {
	shape  payloadShape
	object tickerQuote
	list   []tickerQuote
}

var (
	errNoPrice      = errors.New("response has no price")
	errEmptyList    = errors.New("response list is empty")
	errUnknownShape = errors.New("response is neither an object nor a list")
)

// UnmarshalJSON decodes either layout and records which one was seen.
func (p *quotePayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errUnknownShape
	}

	switch trimmed[0] {
	case '{':
		p.shape = shapeObject
		return json.Unmarshal(trimmed, &p.object)
	case '[':
		p.shape = shapeList
		return json.Unmarshal(trimmed, &p.list)
	default:
		p.shape = shapeUnknown
		return nil
	}
}

// normalize reduces the payload to a single price.
func (p quotePayload) normalize() (decimal.Decimal, error) {
	var q tickerQuote
	switch p.shape {
	case shapeObject:
		q = p.object
	case shapeList:
		if len(p.list) == 0 {
			return decimal.Zero, errEmptyList
		}
		q = p.list[0]
	default:
		return decimal.Zero, errUnknownShape
	}

	if q.Price == nil {
		return decimal.Zero, errNoPrice
	}
	return *q.Price, nil
}

// parsePayload decodes a response body and normalizes it to a price.
func parsePayload(body []byte) (decimal.Decimal, error) {
	var p quotePayload
	if err := json.Unmarshal(body, &p); err != nil {
		return decimal.Zero, fmt.Errorf("decoding response: %w", err)
	}
	return p.normalize()
}
