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
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type productService struct {
	BaseService
	productRepo  portsrepo.ProductRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	txManager    portsrepo.TransactionManager
	pricing      portssvc.PriceDeriverSvc
	audit        portssvc.AuditRecorderSvc
}

// NewProductService creates the product service.
func NewProductService(
	productRepo portsrepo.ProductRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	txManager portsrepo.TransactionManager,
	pricing portssvc.PriceDeriverSvc,
	audit portssvc.AuditRecorderSvc,
) portssvc.ProductSvcFacade {
	return &productService{
		productRepo:  productRepo,
		currencyRepo: currencyRepo,
		txManager:    txManager,
		pricing:      pricing,
		audit:        audit,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, "Product not found")
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *productService) SearchProducts(ctx context.Context, criteria domain.ProductSearchCriteria) (*domain.ProductPage, error) {
	criteria.Page, criteria.PerPage = pagination.Normalize(criteria.Page, criteria.PerPage, pagination.MaxPerPage)
	if !criteria.SortBy.Valid() {
		criteria.SortBy = domain.ProductSortName
	}
	if !criteria.SortOrder.Valid() {
		criteria.SortOrder = domain.SortAsc
	}

	page, err := s.productRepo.SearchProducts(ctx, criteria)
	if err != nil {
		s.LogError(ctx, err, "Failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	if page.Products == nil {
		page.Products = []domain.Product{}
	}
	return page, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, meta domain.RequestMeta) (*domain.Product, error) {
	currency, err := s.resolveCurrency(ctx, req.CurrencyID)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:              req.Name,
		Description:       req.Description,
		Price:             domain.RoundMoney(*req.Price),
		CurrencyID:        currency.CurrencyID,
		TaxCost:           moneyOrZero(req.TaxCost),
		ManufacturingCost: moneyOrZero(req.ManufacturingCost),
	}

	var seeded []domain.ProductPrice
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepo.SaveProduct(txCtx, product); err != nil {
			return fmt.Errorf("failed to save product: %w", err)
		}
		var seedErr error
		seeded, seedErr = s.pricing.SeedInitialPrices(txCtx, product, req.SeedAllCurrencies())
		return seedErr
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create product", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}
	product.Currency = currency

	_ = s.audit.Record(ctx, domain.EventTypeCreate, domain.ResourceProduct, &product.ProductID, meta, map[string]any{
		"seeded_prices": len(seeded),
	})
	s.LogInfo(ctx, "Product created",
		slog.Int64("product_id", product.ProductID),
		slog.Int("seeded_prices", len(seeded)))
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest, meta domain.RequestMeta) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, "Product not found")
	}

	if req.CurrencyID != nil && *req.CurrencyID != product.CurrencyID {
		currency, err := s.resolveCurrency(ctx, *req.CurrencyID)
		if err != nil {
			return nil, err
		}
		product.CurrencyID, product.Currency = currency.CurrencyID, currency
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = domain.RoundMoney(*req.Price)
	}
	if req.TaxCost != nil {
		product.TaxCost = domain.RoundMoney(*req.TaxCost)
	}
	if req.ManufacturingCost != nil {
		product.ManufacturingCost = domain.RoundMoney(*req.ManufacturingCost)
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to update product in service: %w", err)
	}

	_ = s.audit.Record(ctx, domain.EventTypeUpdate, domain.ResourceProduct, &product.ProductID, meta, nil)
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64, meta domain.RequestMeta) error {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return notFoundAs(err, "Product not found")
	}
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.Int64("product_id", productID))
		return fmt.Errorf("failed to delete product in service: %w", err)
	}

	_ = s.audit.Record(ctx, domain.EventTypeDelete, domain.ResourceProduct, &productID, meta, nil)
	return nil
}

// resolveCurrency loads a currency referenced by a request, turning a miss into a field error.
func (s *productService) resolveCurrency(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")
		}
		return nil, fmt.Errorf("failed to load currency: %w", err)
	}
	return currency, nil
}

func moneyOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return domain.RoundMoney(*d)
}
