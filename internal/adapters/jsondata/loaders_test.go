package jsondata

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyLoaderReadsTable(t *testing.T) {
	loader := NewCurrencyLoader("testdata")

	currencies, err := loader.LoadCurrencies(context.Background())

	require.NoError(t, err)
	require.Len(t, currencies, 6)
	assert.Equal(t, "USD", currencies[0].Code)
	assert.Equal(t, "$", currencies[0].Symbol)
	assert.True(t, currencies[0].ExchangeRate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "eu", currencies[1].FlagCode)
	assert.True(t, currencies[1].ExchangeRate.Equal(decimal.RequireFromString("0.92")))
}

func TestCatalogLoaderReadsProductsWithTranslations(t *testing.T) {
	loader := NewCatalogLoader("testdata")

	products, err := loader.LoadProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	apple := products[0]
	assert.Equal(t, "apple", apple.ID)
	assert.Equal(t, "Fruits", apple.Category)
	assert.True(t, apple.Price.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, 100, apple.StockQuantity)
	assert.Equal(t, "Manzana", apple.Translations["es"].Name)
	assert.Equal(t, "pieza", apple.Translations["es"].Unit)
}

func TestCategoryLoaderReadsLabels(t *testing.T) {
	loader := NewCategoryLoader("testdata")

	categories, err := loader.LoadCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Fruits", categories[0].ID)
	assert.Equal(t, "Obst", categories[0].Translations["de"])
}

func TestMissingFileIsLoadFailure(t *testing.T) {
	loader := NewCurrencyLoader(t.TempDir())

	_, err := loader.LoadCurrencies(context.Background())

	assert.Error(t, err)
}

func TestMalformedFileIsLoadFailure(t *testing.T) {
	loader := NewCurrencyLoader("testdata/malformed")

	_, err := loader.LoadCurrencies(context.Background())

	assert.Error(t, err)
}

func TestCancelledContextStopsLoad(t *testing.T) {
	loader := NewCurrencyLoader("testdata")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.LoadCurrencies(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
