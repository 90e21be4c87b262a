package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	audit        portssvc.AuditRecorderSvc
}

// NewCurrencyService creates the currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, audit portssvc.AuditRecorderSvc) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo, audit: audit}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, notFoundAs(err, "Currency not found")
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, meta domain.RequestMeta) (*domain.Currency, error) {
	if err := s.checkUnique(ctx, req.Name, req.Symbol, 0); err != nil {
		return nil, err
	}

	currency := &domain.Currency{
		Name:         req.Name,
		Symbol:       req.Symbol,
		ExchangeRate: req.ExchangeRate.Round(domain.ExchangeRatePlaces),
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to create currency", slog.String("symbol", req.Symbol))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	_ = s.audit.Record(ctx, domain.EventTypeCreate, domain.ResourceCurrency, &currency.CurrencyID, meta, nil)
	s.LogInfo(ctx, "Currency created", slog.Int64("currency_id", currency.CurrencyID))
	return currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest, meta domain.RequestMeta) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, notFoundAs(err, "Currency not found")
	}

	name, symbol := "", ""
	if req.Name != nil {
		currency.Name, name = *req.Name, *req.Name
	}
	if req.Symbol != nil {
		currency.Symbol, symbol = *req.Symbol, *req.Symbol
	}
	if err := s.checkUnique(ctx, name, symbol, currencyID); err != nil {
		return nil, err
	}
	if req.ExchangeRate != nil {
		currency.ExchangeRate = req.ExchangeRate.Round(domain.ExchangeRatePlaces)
	}

	if err := s.currencyRepo.UpdateCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.Int64("currency_id", currencyID))
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}

	_ = s.audit.Record(ctx, domain.EventTypeUpdate, domain.ResourceCurrency, &currency.CurrencyID, meta, nil)
	return currency, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID int64, meta domain.RequestMeta) error {
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		return notFoundAs(err, "Currency not found")
	}

	inUse, err := s.currencyRepo.CountProductsUsingCurrency(ctx, currencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count products using currency", slog.Int64("currency_id", currencyID))
		return fmt.Errorf("failed to check currency references: %w", err)
	}
	if inUse > 0 {
		return apperrors.NewConflictError("Cannot delete currency because it has associated products")
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.Int64("currency_id", currencyID))
		return fmt.Errorf("failed to delete currency in service: %w", err)
	}

	_ = s.audit.Record(ctx, domain.EventTypeDelete, domain.ResourceCurrency, &currencyID, meta, nil)
	return nil
}

// checkUnique rejects a name or symbol already used by another currency. Empty values are skipped.
func (s *currencyService) checkUnique(ctx context.Context, name, symbol string, excludeID int64) error {
	if name != "" {
		taken, err := s.currencyRepo.ExistsCurrencyWithName(ctx, name, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check currency name: %w", err)
		}
		if taken {
			return apperrors.NewDuplicateError("name", "The name has already been taken.")
		}
	}
	if symbol != "" {
		taken, err := s.currencyRepo.ExistsCurrencyWithSymbol(ctx, symbol, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check currency symbol: %w", err)
		}
		if taken {
			return apperrors.NewDuplicateError("symbol", "The symbol has already been taken.")
		}
	}
	return nil
}
