package dto

import "github.com/shopspring/decimal"

// ProductResponse defines a catalog item resolved for one language and
// currency. Price carries the converted numeric value; FormattedPrice is
// the display string with the currency symbol.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	CategoryLabel  string          `json:"categoryLabel"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	FormattedPrice string          `json:"formattedPrice"`
	StockQuantity  int             `json:"stockQuantity"`
}
