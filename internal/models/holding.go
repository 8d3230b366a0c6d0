package models

import "github.com/shopspring/decimal"

// NotAvailable is stored for optional text fields the client did not send.
const NotAvailable = "NA"

// Holding is one purchased stock position in the portfolio.
type Holding struct {
	Base
	Name          string          `gorm:"not null;default:'NA'" json:"name"`
	Symbol        string          `gorm:"not null;index" json:"symbol"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"purchase_price"`
	PurchaseDate  string          `gorm:"not null;default:'NA'" json:"purchase_date"`
	Shares        int64           `gorm:"not null" json:"shares"`
}

// RoundMoney rounds a monetary amount to cents.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
