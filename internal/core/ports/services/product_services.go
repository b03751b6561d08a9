package services

import (
	"context"

	"github.com/localecart/catalog_backend/internal/core/domain"
)

// ProductSvcFacade exposes the loaded catalog.
type ProductSvcFacade interface {
	// ListProducts retrieves all catalog items, wired to their resolvers.
	ListProducts(ctx context.Context) ([]*domain.Product, error)

	// GetProduct retrieves one item by id, or apperrors.ErrNotFound.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}
