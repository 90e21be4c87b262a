package services

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data.
// Every successful mutation is recorded in the audit trail.
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, meta domain.RequestMeta) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest, meta domain.RequestMeta) (*domain.Currency, error)
	// DeleteCurrency fails with a conflict while any product uses the currency as its base.
	DeleteCurrency(ctx context.Context, currencyID int64, meta domain.RequestMeta) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
