package ports

import (
	"context"

	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductRecord is the raw catalog entry supplied by a CatalogLoader,
// before it is wired into a domain.Product.
type ProductRecord struct {
	ID            string                          `json:"id"`
	Category      string                          `json:"category"`
	Price         decimal.Decimal                 `json:"price"`
	BaseCurrency  string                          `json:"baseCurrency"`
	StockQuantity int                             `json:"stockQuantity"`
	Translations  map[string]domain.LocalizedText `json:"translations"`
}

// CurrencyLoader supplies the full currency table. Called at most once per
// service lifetime by the ensure-loaded gate; retries are the caller's concern.
type CurrencyLoader interface {
	LoadCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CatalogLoader supplies the full product list with embedded translations.
type CatalogLoader interface {
	LoadProducts(ctx context.Context) ([]ProductRecord, error)
}

// CategoryLoader supplies the category id -> per-language label table.
type CategoryLoader interface {
	LoadCategories(ctx context.Context) ([]domain.CategoryTranslation, error)
}
