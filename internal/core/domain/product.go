package domain

import (
	"context"
	"fmt"

	"github.com/localecart/catalog_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PriceConverter is the currency collaborator a product needs to resolve
// its display price. Satisfied by the currency service facade.
type PriceConverter interface {
	ConvertPrice(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error)
	FormatPrice(ctx context.Context, amount decimal.Decimal, currencyCode string) (string, error)
}

// TranslationResolver resolves the localized display fields for an entity key.
type TranslationResolver interface {
	Resolve(key, language string) LocalizedText
}

// CategoryResolver resolves a category id into a localized label.
type CategoryResolver interface {
	GetCategoryTranslation(ctx context.Context, categoryID, language string) (string, error)
}

// Product is a sellable catalog item. Price is always denominated in
// BaseCurrency; Name and Unit are the default-language display fields used
// when no translation resolves. The resolver collaborators are mandatory.
type Product struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	BaseCurrency  string          `json:"baseCurrency"`
	StockQuantity int             `json:"stockQuantity"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`

	currency     PriceConverter
	localization TranslationResolver
	categories   CategoryResolver
}

// NewProduct wires a product to its resolver collaborators. All three are
// required; construction fails fast on a nil dependency.
func NewProduct(id, category string, price decimal.Decimal, baseCurrency string, stockQuantity int, name, unit string,
	currency PriceConverter, localization TranslationResolver, categories CategoryResolver) (*Product, error) {
	if currency == nil {
		return nil, fmt.Errorf("%w: product requires a currency converter", apperrors.ErrValidation)
	}
	if localization == nil {
		return nil, fmt.Errorf("%w: product requires a translation resolver", apperrors.ErrValidation)
	}
	if categories == nil {
		return nil, fmt.Errorf("%w: product requires a category resolver", apperrors.ErrValidation)
	}
	if baseCurrency == "" {
		baseCurrency = PivotCurrency
	}
	return &Product{
		ID:            id,
		Category:      category,
		Price:         price,
		BaseCurrency:  baseCurrency,
		StockQuantity: stockQuantity,
		Name:          name,
		Unit:          unit,
		currency:      currency,
		localization:  localization,
		categories:    categories,
	}, nil
}

// PriceInCurrency converts the product price from its base currency into
// targetCurrency. Unknown currency codes pass through unchanged per the
// converter's policy; a blank target is a validation error.
func (p *Product) PriceInCurrency(ctx context.Context, targetCurrency string) (decimal.Decimal, error) {
	if targetCurrency == "" {
		return decimal.Zero, fmt.Errorf("%w: target currency is required", apperrors.ErrValidation)
	}
	return p.currency.ConvertPrice(ctx, p.Price, p.BaseCurrency, targetCurrency)
}

// FormattedPrice converts and then formats the price for display.
// Errors from either stage propagate unchanged.
func (p *Product) FormattedPrice(ctx context.Context, targetCurrency string) (string, error) {
	price, err := p.PriceInCurrency(ctx, targetCurrency)
	if err != nil {
		return "", err
	}
	return p.currency.FormatPrice(ctx, price, targetCurrency)
}

// LocalizedName returns the product name in the requested language,
// falling back to the stored default. A blank language short-circuits to
// the default without consulting the translation store.
func (p *Product) LocalizedName(language string) string {
	if language == "" {
		return p.Name
	}
	if t := p.localization.Resolve(p.ID, language); t.Name != "" {
		return t.Name
	}
	return p.Name
}

// LocalizedUnit returns the product unit in the requested language,
// falling back to the stored default.
func (p *Product) LocalizedUnit(language string) string {
	if language == "" {
		return p.Unit
	}
	if t := p.localization.Resolve(p.ID, language); t.Unit != "" {
		return t.Unit
	}
	return p.Unit
}

// LocalizedCategory resolves the product's category id into a label for
// the requested language. The final fallback is the raw category id.
func (p *Product) LocalizedCategory(ctx context.Context, language string) (string, error) {
	return p.categories.GetCategoryTranslation(ctx, p.Category, language)
}
