package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestHolding creates a holding with a unique symbol, 10 shares bought
// at 100.00.
func CreateTestHolding(t *testing.T, db *gorm.DB) *models.Holding {
	t.Helper()
	return CreateTestHoldingWith(t, db, fmt.Sprintf("TST%d", nextID()), decimal.NewFromInt(100), 10)
}

// CreateTestHoldingWith creates a holding with the given symbol, purchase price
// and share count.
func CreateTestHoldingWith(t *testing.T, db *gorm.DB, symbol string, price decimal.Decimal, shares int64) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		Name:          symbol + " Inc.",
		Symbol:        symbol,
		PurchasePrice: models.RoundMoney(price),
		PurchaseDate:  "2024-01-02",
		Shares:        shares,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}
