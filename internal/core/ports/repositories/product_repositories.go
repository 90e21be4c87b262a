package repositories

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product with its base currency loaded.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts retrieves all products ordered by name.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// SearchProducts applies the criteria and returns one page.
	SearchProducts(ctx context.Context, criteria domain.ProductSearchCriteria) (*domain.ProductPage, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct inserts a new product and fills its ID and timestamps.
	SaveProduct(ctx context.Context, product *domain.Product) error

	// UpdateProduct overwrites all mutable product fields.
	UpdateProduct(ctx context.Context, product *domain.Product) error

	// DeleteProduct removes a product; its prices go with it.
	DeleteProduct(ctx context.Context, productID int64) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
