package services

import (
	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/localecart/catalog_backend/internal/core/ports"
	portssvc "github.com/localecart/catalog_backend/internal/core/ports/services"
)

// ContainerDeps carries the external collaborators the service container
// needs: one loader per table and a preference store per preference.
type ContainerDeps struct {
	CurrencyLoader ports.CurrencyLoader
	CatalogLoader  ports.CatalogLoader
	CategoryLoader ports.CategoryLoader

	CurrencyPrefs ports.PreferenceStore
	LanguagePrefs ports.PreferenceStore

	DefaultCurrency string
	DefaultLanguage string
	Languages       []domain.Language
}

// Container holds the concrete services. Callers that only need the
// service interfaces should go through Facades.
type Container struct {
	Currency     *CurrencyService
	Localization *LocalizationService
	Category     *CategoryService
	Product      *ProductService
}

// NewContainer creates a service container with properly initialized
// dependencies.
func NewContainer(deps ContainerDeps) (*Container, error) {
	currency := NewCurrencyService(deps.CurrencyLoader, deps.CurrencyPrefs, deps.DefaultCurrency)
	localization := NewLocalizationService(deps.LanguagePrefs, deps.DefaultLanguage, deps.Languages)
	category := NewCategoryService(deps.CategoryLoader)

	product, err := NewProductService(deps.CatalogLoader, currency, localization, category)
	if err != nil {
		return nil, err
	}

	return &Container{
		Currency:     currency,
		Localization: localization,
		Category:     category,
		Product:      product,
	}, nil
}

// Facades exposes the container behind the service port interfaces.
func (c *Container) Facades() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:     c.Currency,
		Localization: c.Localization,
		Category:     c.Category,
		Product:      c.Product,
	}
}

// Compile-time interface implementation checks.
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.LocalizationSvcFacade = (*LocalizationService)(nil)
	_ portssvc.CategorySvcFacade     = (*CategoryService)(nil)
	_ portssvc.ProductSvcFacade      = (*ProductService)(nil)
	_ domain.PriceConverter          = (*CurrencyService)(nil)
	_ domain.TranslationResolver     = (*LocalizationService)(nil)
	_ domain.CategoryResolver        = (*CategoryService)(nil)
)
