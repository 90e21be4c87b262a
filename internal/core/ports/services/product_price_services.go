package services

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// ProductPriceReaderSvc defines read operations for product prices
type ProductPriceReaderSvc interface {
	// ListProductPrices fails with not found when the product does not exist.
	ListProductPrices(ctx context.Context, productID int64) ([]domain.ProductPrice, error)
	ListPricesForExport(ctx context.Context) ([]domain.ProductPriceExportRow, error)
}

// PriceDeriverSvc computes and stores converted prices.
type PriceDeriverSvc interface {
	// DerivePrice converts the product's base price into the target currency,
	// rounds it to two places, upserts it and records the derivation.
	DerivePrice(ctx context.Context, productID, targetCurrencyID int64, meta domain.RequestMeta) (*domain.DerivedPrice, error)
	// SeedInitialPrices writes the base-currency price and, when allCurrencies
	// is set, a converted price for every other currency. Existing rows are kept.
	SeedInitialPrices(ctx context.Context, product *domain.Product, allCurrencies bool) ([]domain.ProductPrice, error)
}

// ProductPriceSvcFacade combines all product price service interfaces
type ProductPriceSvcFacade interface {
	ProductPriceReaderSvc
	PriceDeriverSvc
}
