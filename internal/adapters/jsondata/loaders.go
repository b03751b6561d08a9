// Package jsondata implements the catalog, currency and category loader
// ports over JSON files on disk. A missing or malformed file is a load
// failure; loaders never hand back partial data.
package jsondata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/localecart/catalog_backend/internal/core/ports"
)

// Default file names inside the data directory.
const (
	CurrenciesFile = "currencies.json"
	ProductsFile   = "products.json"
	CategoriesFile = "categories.json"
)

// CurrencyLoader reads the currency table from a JSON file.
type CurrencyLoader struct {
	path string
}

// NewCurrencyLoader creates a loader for dataDir/currencies.json.
func NewCurrencyLoader(dataDir string) *CurrencyLoader {
	return &CurrencyLoader{path: filepath.Join(dataDir, CurrenciesFile)}
}

type currencyFile struct {
	Currencies []domain.Currency `json:"currencies"`
}

func (l *CurrencyLoader) LoadCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var doc currencyFile
	if err := readJSON(ctx, l.path, &doc); err != nil {
		return nil, err
	}
	return doc.Currencies, nil
}

// CatalogLoader reads the product catalog from a JSON file.
type CatalogLoader struct {
	path string
}

// NewCatalogLoader creates a loader for dataDir/products.json.
func NewCatalogLoader(dataDir string) *CatalogLoader {
	return &CatalogLoader{path: filepath.Join(dataDir, ProductsFile)}
}

type productFile struct {
	Products []ports.ProductRecord `json:"products"`
}

func (l *CatalogLoader) LoadProducts(ctx context.Context) ([]ports.ProductRecord, error) {
	var doc productFile
	if err := readJSON(ctx, l.path, &doc); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// CategoryLoader reads the category translation table from a JSON file.
type CategoryLoader struct {
	path string
}

// NewCategoryLoader creates a loader for dataDir/categories.json.
func NewCategoryLoader(dataDir string) *CategoryLoader {
	return &CategoryLoader{path: filepath.Join(dataDir, CategoriesFile)}
}

type categoryFile struct {
	Categories []domain.CategoryTranslation `json:"categories"`
}

func (l *CategoryLoader) LoadCategories(ctx context.Context) ([]domain.CategoryTranslation, error) {
	var doc categoryFile
	if err := readJSON(ctx, l.path, &doc); err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

func readJSON(ctx context.Context, path string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return nil
}

// Compile-time interface implementation checks.
var (
	_ ports.CurrencyLoader = (*CurrencyLoader)(nil)
	_ ports.CatalogLoader  = (*CatalogLoader)(nil)
	_ ports.CategoryLoader = (*CategoryLoader)(nil)
)
