package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/localecart/catalog_backend/internal/apperrors"
	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/localecart/catalog_backend/internal/core/ports"
	portssvc "github.com/localecart/catalog_backend/internal/core/ports/services"
	"github.com/localecart/catalog_backend/internal/middleware"
)

// ProductService loads the catalog once and exposes products wired to
// their resolver collaborators. During the load it feeds each record's
// embedded translations into the localization service, and picks the
// default-language entry as the product's stored default name/unit.
type ProductService struct {
	loader       ports.CatalogLoader
	currency     domain.PriceConverter
	localization portssvc.LocalizationSvc
	categories   domain.CategoryResolver

	loadMu   sync.Mutex
	loaded   bool
	products []*domain.Product
	byID     map[string]*domain.Product
}

// NewProductService creates a ProductService. The loader and all three
// resolver collaborators are mandatory.
func NewProductService(loader ports.CatalogLoader, currency domain.PriceConverter,
	localization portssvc.LocalizationSvc, categories domain.CategoryResolver) (*ProductService, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: product service requires a catalog loader", apperrors.ErrValidation)
	}
	if currency == nil {
		return nil, fmt.Errorf("%w: product service requires a currency converter", apperrors.ErrValidation)
	}
	if localization == nil {
		return nil, fmt.Errorf("%w: product service requires a localization service", apperrors.ErrValidation)
	}
	if categories == nil {
		return nil, fmt.Errorf("%w: product service requires a category resolver", apperrors.ErrValidation)
	}
	return &ProductService{
		loader:       loader,
		currency:     currency,
		localization: localization,
		categories:   categories,
	}, nil
}

func (s *ProductService) ensureLoaded(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.loaded {
		return nil
	}

	records, err := s.loader.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to load products: %v", apperrors.ErrNotLoaded, err)
	}

	products := make([]*domain.Product, 0, len(records))
	byID := make(map[string]*domain.Product, len(records))
	for _, r := range records {
		if r.ID == "" {
			return fmt.Errorf("%w: product record with blank id", apperrors.ErrNotLoaded)
		}
		if _, exists := byID[r.ID]; exists {
			return fmt.Errorf("%w: duplicate product id %q", apperrors.ErrNotLoaded, r.ID)
		}

		defaults := r.Translations[domain.DefaultLanguage]
		if defaults.Name == "" {
			defaults.Name = r.ID
		}

		product, err := domain.NewProduct(r.ID, r.Category, r.Price, r.BaseCurrency, r.StockQuantity,
			defaults.Name, defaults.Unit, s.currency, s.localization, s.categories)
		if err != nil {
			return fmt.Errorf("failed to construct product %q: %w", r.ID, err)
		}

		for lang, text := range r.Translations {
			s.localization.AddTranslation(r.ID, lang, text)
		}

		products = append(products, product)
		byID[r.ID] = product
	}

	s.products = products
	s.byID = byID
	s.loaded = true
	middleware.GetLoggerFromCtx(ctx).Info("Catalog loaded", slog.Int("count", len(products)))
	return nil
}

// ListProducts retrieves all catalog items.
func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	out := make([]*domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// GetProduct retrieves one catalog item by id.
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", apperrors.ErrValidation)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	product, ok := s.byID[productID]
	if !ok {
		return nil, fmt.Errorf("%w: product %q", apperrors.ErrNotFound, productID)
	}
	return product, nil
}
