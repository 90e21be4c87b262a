package handlers_test

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, meta domain.RequestMeta) (*domain.Currency, error) {
	args := m.Called(ctx, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest, meta domain.RequestMeta) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, currencyID int64, meta domain.RequestMeta) error {
	args := m.Called(ctx, currencyID, meta)
	return args.Error(0)
}

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) SearchProducts(ctx context.Context, criteria domain.ProductSearchCriteria) (*domain.ProductPage, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductPage), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, meta domain.RequestMeta) (*domain.Product, error) {
	args := m.Called(ctx, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest, meta domain.RequestMeta) (*domain.Product, error) {
	args := m.Called(ctx, productID, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, productID int64, meta domain.RequestMeta) error {
	args := m.Called(ctx, productID, meta)
	return args.Error(0)
}

// --- Mock ProductPriceService ---
type MockProductPriceService struct {
	mock.Mock
}

func (m *MockProductPriceService) ListProductPrices(ctx context.Context, productID int64) ([]domain.ProductPrice, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPrice), args.Error(1)
}

func (m *MockProductPriceService) ListPricesForExport(ctx context.Context) ([]domain.ProductPriceExportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPriceExportRow), args.Error(1)
}

func (m *MockProductPriceService) DerivePrice(ctx context.Context, productID, targetCurrencyID int64, meta domain.RequestMeta) (*domain.DerivedPrice, error) {
	args := m.Called(ctx, productID, targetCurrencyID, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DerivedPrice), args.Error(1)
}

func (m *MockProductPriceService) SeedInitialPrices(ctx context.Context, product *domain.Product, allCurrencies bool) ([]domain.ProductPrice, error) {
	args := m.Called(ctx, product, allCurrencies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPrice), args.Error(1)
}

// --- Mock EventLogService ---
type MockEventLogService struct {
	mock.Mock
}

func (m *MockEventLogService) Record(ctx context.Context, eventType domain.EventType, resource domain.ResourceType,
	resourceID *int64, meta domain.RequestMeta, extras map[string]any) domain.AuditResult {
	args := m.Called(ctx, eventType, resource, resourceID, meta, extras)
	return args.Get(0).(domain.AuditResult)
}

func (m *MockEventLogService) GetEventLogByID(ctx context.Context, eventLogID int64) (*domain.EventLog, error) {
	args := m.Called(ctx, eventLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventLog), args.Error(1)
}

func (m *MockEventLogService) ListEventLogs(ctx context.Context, filter domain.EventLogFilter) (*domain.EventLogPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventLogPage), args.Error(1)
}

func (m *MockEventLogService) ListEventLogsForExport(ctx context.Context, dateRange domain.DateRange) ([]domain.EventLog, error) {
	args := m.Called(ctx, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventLog), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *portssvc.IssuedToken, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*portssvc.IssuedToken), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *portssvc.IssuedToken, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*portssvc.IssuedToken), args.Error(2)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}
