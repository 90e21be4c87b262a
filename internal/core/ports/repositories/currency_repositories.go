package repositories

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies ordered by name.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ExistsCurrencyWithName reports whether another currency already uses name.
	// excludeID is ignored when zero.
	ExistsCurrencyWithName(ctx context.Context, name string, excludeID int64) (bool, error)

	// ExistsCurrencyWithSymbol reports whether another currency already uses symbol.
	ExistsCurrencyWithSymbol(ctx context.Context, symbol string, excludeID int64) (bool, error)

	// CountProductsUsingCurrency counts products whose base currency is currencyID.
	CountProductsUsingCurrency(ctx context.Context, currencyID int64) (int, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency inserts a new currency and fills its ID and timestamps.
	SaveCurrency(ctx context.Context, currency *domain.Currency) error

	// UpdateCurrency overwrites name, symbol and exchange rate.
	UpdateCurrency(ctx context.Context, currency *domain.Currency) error

	// DeleteCurrency removes a currency.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
