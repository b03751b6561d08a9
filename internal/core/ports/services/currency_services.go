package services

import (
	"context"

	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations over the currency table.
type CurrencyReaderSvc interface {
	// ConvertPrice converts amount from one currency to another through the
	// pivot currency, rounded to 2 decimal places. Unknown codes pass through.
	ConvertPrice(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error)

	// FormatPrice renders amount with the currency's symbol prefixed, using
	// invariant digit grouping. Unknown codes format without a symbol.
	FormatPrice(ctx context.Context, amount decimal.Decimal, currencyCode string) (string, error)

	// ListAvailableCurrencies retrieves all known currencies.
	ListAvailableCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetCurrencyByCode retrieves a single currency, or apperrors.ErrNotFound.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
}

// CurrencyPreferenceSvc manages the caller's active currency selection.
type CurrencyPreferenceSvc interface {
	CurrentCurrency() string

	// SetCurrentCurrency updates the active currency, persists it and
	// notifies subscribers. Setting the already-active value is a no-op.
	SetCurrentCurrency(ctx context.Context, currencyCode string) error
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyPreferenceSvc
}
