package domain

import "github.com/shopspring/decimal"

// PivotCurrency is the currency every conversion passes through. Its own
// exchange rate is exactly 1.0 by definition.
const PivotCurrency = "USD"

// Currency represents a supported currency in the domain.
type Currency struct {
	Code         string          `json:"code"`     // Primary Key (e.g., "USD"), case-sensitive
	Name         string          `json:"name"`     // e.g., "US Dollar"
	Symbol       string          `json:"symbol"`   // e.g., "$"
	FlagCode     string          `json:"flagCode"` // e.g., "us", used for flag icons on the client
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}
