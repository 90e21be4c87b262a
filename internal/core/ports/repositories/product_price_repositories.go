package repositories

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// ProductPriceReader defines read operations for product prices
type ProductPriceReader interface {
	// ListPricesByProduct returns a product's prices, newest first, with currencies loaded.
	ListPricesByProduct(ctx context.Context, productID int64) ([]domain.ProductPrice, error)

	// ListPricesForExport returns every price joined with product and currency names,
	// ordered by product then currency.
	ListPricesForExport(ctx context.Context) ([]domain.ProductPriceExportRow, error)
}

// ProductPriceWriter defines write operations for product prices
type ProductPriceWriter interface {
	// UpsertPrice atomically inserts or overwrites the price for
	// (price.ProductID, price.CurrencyID). It fills ID and timestamps and
	// reports whether a new row was inserted.
	UpsertPrice(ctx context.Context, price *domain.ProductPrice) (created bool, err error)

	// InsertMissingPrices inserts each price whose (product, currency) pair has no
	// row yet and leaves existing rows untouched. It returns the inserted rows.
	InsertMissingPrices(ctx context.Context, prices []domain.ProductPrice) ([]domain.ProductPrice, error)
}

// ProductPriceRepositoryFacade combines all product price repository interfaces
type ProductPriceRepositoryFacade interface {
	ProductPriceReader
	ProductPriceWriter
}
