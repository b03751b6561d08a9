package domain

import (
	"context"
	"testing"

	"github.com/localecart/catalog_backend/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConverter doubles the amount so tests can tell conversion happened.
type stubConverter struct{}

func (stubConverter) ConvertPrice(_ context.Context, amount decimal.Decimal, _, _ string) (decimal.Decimal, error) {
	return amount.Mul(decimal.NewFromInt(2)), nil
}

func (stubConverter) FormatPrice(_ context.Context, amount decimal.Decimal, _ string) (string, error) {
	return "$" + amount.StringFixed(2), nil
}

type stubResolver struct {
	texts map[string]LocalizedText
}

func (r stubResolver) Resolve(key, _ string) LocalizedText {
	return r.texts[key]
}

type stubCategories struct{}

func (stubCategories) GetCategoryTranslation(_ context.Context, categoryID, _ string) (string, error) {
	return "localized:" + categoryID, nil
}

func newTestProduct(t *testing.T, resolver TranslationResolver) *Product {
	t.Helper()
	p, err := NewProduct("apple", "fruits", decimal.NewFromInt(3), "", 10, "Apple", "piece",
		stubConverter{}, resolver, stubCategories{})
	require.NoError(t, err)
	return p
}

func TestNewProductRejectsNilDependencies(t *testing.T) {
	resolver := stubResolver{}

	_, err := NewProduct("a", "c", decimal.Zero, "USD", 0, "", "", nil, resolver, stubCategories{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewProduct("a", "c", decimal.Zero, "USD", 0, "", "", stubConverter{}, nil, stubCategories{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewProduct("a", "c", decimal.Zero, "USD", 0, "", "", stubConverter{}, resolver, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewProductDefaultsBaseCurrencyToPivot(t *testing.T) {
	p := newTestProduct(t, stubResolver{})
	assert.Equal(t, PivotCurrency, p.BaseCurrency)
}

func TestPriceInCurrencyDelegatesToConverter(t *testing.T) {
	p := newTestProduct(t, stubResolver{})

	price, err := p.PriceInCurrency(context.Background(), "EUR")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(6)))
}

func TestPriceInCurrencyRequiresTarget(t *testing.T) {
	p := newTestProduct(t, stubResolver{})

	_, err := p.PriceInCurrency(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFormattedPriceChainsConvertAndFormat(t *testing.T) {
	p := newTestProduct(t, stubResolver{})

	formatted, err := p.FormattedPrice(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "$6.00", formatted)
}

func TestLocalizedFieldsFallBackToStoredDefaults(t *testing.T) {
	resolver := stubResolver{texts: map[string]LocalizedText{
		"apple": {Name: "Manzana"}, // unit missing
	}}
	p := newTestProduct(t, resolver)

	assert.Equal(t, "Manzana", p.LocalizedName("es"))
	assert.Equal(t, "piece", p.LocalizedUnit("es"))
}

func TestLocalizedFieldsBlankLanguageShortCircuits(t *testing.T) {
	resolver := stubResolver{texts: map[string]LocalizedText{
		"apple": {Name: "Manzana", Unit: "pieza"},
	}}
	p := newTestProduct(t, resolver)

	assert.Equal(t, "Apple", p.LocalizedName(""))
	assert.Equal(t, "piece", p.LocalizedUnit(""))
}

func TestLocalizedCategoryDelegates(t *testing.T) {
	p := newTestProduct(t, stubResolver{})

	label, err := p.LocalizedCategory(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, "localized:fruits", label)
}
