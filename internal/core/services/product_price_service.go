package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
)

// productPriceService derives a product's price in other currencies.
// It keeps no state of its own; every call reads and writes the store directly.
type productPriceService struct {
	BaseService
	productRepo  portsrepo.ProductReader
	currencyRepo portsrepo.CurrencyReader
	priceRepo    portsrepo.ProductPriceRepositoryFacade
	audit        portssvc.AuditRecorderSvc
}

// NewProductPriceService creates the price derivation service.
func NewProductPriceService(
	productRepo portsrepo.ProductReader,
	currencyRepo portsrepo.CurrencyReader,
	priceRepo portsrepo.ProductPriceRepositoryFacade,
	audit portssvc.AuditRecorderSvc,
) portssvc.ProductPriceSvcFacade {
	return &productPriceService{
		productRepo:  productRepo,
		currencyRepo: currencyRepo,
		priceRepo:    priceRepo,
		audit:        audit,
	}
}

var _ portssvc.ProductPriceSvcFacade = (*productPriceService)(nil)

func (s *productPriceService) ListProductPrices(ctx context.Context, productID int64) ([]domain.ProductPrice, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, notFoundAs(err, "Product not found")
	}
	prices, err := s.priceRepo.ListPricesByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list product prices", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to list product prices: %w", err)
	}
	if prices == nil {
		return []domain.ProductPrice{}, nil
	}
	return prices, nil
}

func (s *productPriceService) ListPricesForExport(ctx context.Context) ([]domain.ProductPriceExportRow, error) {
	rows, err := s.priceRepo.ListPricesForExport(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list product prices for export")
		return nil, fmt.Errorf("failed to list product prices for export: %w", err)
	}
	return rows, nil
}

func (s *productPriceService) DerivePrice(ctx context.Context, productID, targetCurrencyID int64, meta domain.RequestMeta) (*domain.DerivedPrice, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, "Product not found")
	}

	// A product's base-currency price is its own price, never a conversion.
	if targetCurrencyID == product.CurrencyID {
		return nil, apperrors.NewFieldValidationError("currency_id",
			"The currency must be different from the product's base currency.")
	}

	target, err := s.currencyRepo.FindCurrencyByID(ctx, targetCurrencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")
		}
		s.LogError(ctx, err, "Failed to load target currency", slog.Int64("currency_id", targetCurrencyID))
		return nil, fmt.Errorf("failed to load target currency: %w", err)
	}

	calculated := domain.ConvertPrice(product.Price, target.ExchangeRate)
	price := domain.ProductPrice{
		ProductID:  product.ProductID,
		CurrencyID: target.CurrencyID,
		Price:      domain.RoundMoney(calculated),
	}
	created, err := s.priceRepo.UpsertPrice(ctx, &price)
	if err != nil {
		s.LogError(ctx, err, "Failed to store derived price",
			slog.Int64("product_id", product.ProductID),
			slog.Int64("currency_id", target.CurrencyID))
		return nil, fmt.Errorf("failed to store derived price: %w", err)
	}
	price.Currency = target

	eventType := domain.EventTypeUpdate
	if created {
		eventType = domain.EventTypeCreate
	}
	_ = s.audit.Record(ctx, eventType, domain.ResourceProductPrice, &price.ProductPriceID, meta, map[string]any{
		"calculated_price": calculated,
		"base_price":       product.Price,
		"exchange_rate":    target.ExchangeRate,
	})

	s.LogInfo(ctx, "Product price derived",
		slog.Int64("product_id", product.ProductID),
		slog.Int64("currency_id", target.CurrencyID),
		slog.String("price", price.Price.String()),
		slog.Bool("created", created))

	return &domain.DerivedPrice{
		Price:           price,
		Created:         created,
		CalculatedPrice: calculated,
		BasePrice:       product.Price,
		ExchangeRate:    target.ExchangeRate,
	}, nil
}

func (s *productPriceService) SeedInitialPrices(ctx context.Context, product *domain.Product, allCurrencies bool) ([]domain.ProductPrice, error) {
	seeds := []domain.ProductPrice{{
		ProductID:  product.ProductID,
		CurrencyID: product.CurrencyID,
		Price:      domain.RoundMoney(product.Price),
	}}

	if allCurrencies {
		currencies, err := s.currencyRepo.ListCurrencies(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list currencies for seeding: %w", err)
		}
		for _, c := range currencies {
			if c.CurrencyID == product.CurrencyID {
				continue
			}
			seeds = append(seeds, domain.ProductPrice{
				ProductID:  product.ProductID,
				CurrencyID: c.CurrencyID,
				Price:      domain.RoundMoney(domain.ConvertPrice(product.Price, c.ExchangeRate)),
			})
		}
	}

	inserted, err := s.priceRepo.InsertMissingPrices(ctx, seeds)
	if err != nil {
		return nil, fmt.Errorf("failed to seed product prices: %w", err)
	}
	return inserted, nil
}
