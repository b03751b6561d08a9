package dto

import (
	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	FlagCode     string          `json:"flagCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO.
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:         c.Code,
		Name:         c.Name,
		Symbol:       c.Symbol,
		FlagCode:     c.FlagCode,
		ExchangeRate: c.ExchangeRate,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}

// SetCurrencyRequest selects the active currency.
type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,uppercase,len=3"`
}

// ActiveCurrencyResponse reports the active currency preference.
type ActiveCurrencyResponse struct {
	Currency string `json:"currency"`
}

// ConvertPriceResponse is the result of a conversion request.
type ConvertPriceResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted decimal.Decimal `json:"converted"`
	Formatted string          `json:"formatted"`
}
