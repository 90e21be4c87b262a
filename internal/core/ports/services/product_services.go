package services

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/dto"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, criteria domain.ProductSearchCriteria) (*domain.ProductPage, error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	// CreateProduct stores the product together with its base-currency price
	// and, if requested, a converted price for every other currency.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, meta domain.RequestMeta) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest, meta domain.RequestMeta) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64, meta domain.RequestMeta) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
