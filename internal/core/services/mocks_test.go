package services_test

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ExistsCurrencyWithName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyRepository) ExistsCurrencyWithSymbol(ctx context.Context, symbol string, excludeID int64) (bool, error) {
	args := m.Called(ctx, symbol, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyRepository) CountProductsUsingCurrency(ctx context.Context, currencyID int64) (int, error) {
	args := m.Called(ctx, currencyID)
	return args.Int(0), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency *domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency *domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SearchProducts(ctx context.Context, criteria domain.ProductSearchCriteria) (*domain.ProductPage, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductPage), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock ProductPriceRepository ---
type MockProductPriceRepository struct {
	mock.Mock
}

func (m *MockProductPriceRepository) ListPricesByProduct(ctx context.Context, productID int64) ([]domain.ProductPrice, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPrice), args.Error(1)
}

func (m *MockProductPriceRepository) ListPricesForExport(ctx context.Context) ([]domain.ProductPriceExportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPriceExportRow), args.Error(1)
}

func (m *MockProductPriceRepository) UpsertPrice(ctx context.Context, price *domain.ProductPrice) (bool, error) {
	args := m.Called(ctx, price)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductPriceRepository) InsertMissingPrices(ctx context.Context, prices []domain.ProductPrice) ([]domain.ProductPrice, error) {
	args := m.Called(ctx, prices)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPrice), args.Error(1)
}

// --- Mock EventLogRepository ---
type MockEventLogRepository struct {
	mock.Mock
}

func (m *MockEventLogRepository) FindEventLogByID(ctx context.Context, eventLogID int64) (*domain.EventLog, error) {
	args := m.Called(ctx, eventLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventLog), args.Error(1)
}

func (m *MockEventLogRepository) ListEventLogs(ctx context.Context, filter domain.EventLogFilter) (*domain.EventLogPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventLogPage), args.Error(1)
}

func (m *MockEventLogRepository) ListEventLogsForExport(ctx context.Context, dateRange domain.DateRange) ([]domain.EventLog, error) {
	args := m.Called(ctx, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventLog), args.Error(1)
}

func (m *MockEventLogRepository) SaveEventLog(ctx context.Context, entry *domain.EventLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

// WithinTransaction runs fn inline and returns its error unless the mock overrides it.
func (m *MockTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- Mock AuditRecorder ---
type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, eventType domain.EventType, resource domain.ResourceType,
	resourceID *int64, meta domain.RequestMeta, extras map[string]any) domain.AuditResult {
	args := m.Called(ctx, eventType, resource, resourceID, meta, extras)
	return args.Get(0).(domain.AuditResult)
}

// --- Mock PriceDeriver ---
type MockPriceDeriver struct {
	mock.Mock
}

func (m *MockPriceDeriver) DerivePrice(ctx context.Context, productID, targetCurrencyID int64, meta domain.RequestMeta) (*domain.DerivedPrice, error) {
	args := m.Called(ctx, productID, targetCurrencyID, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DerivedPrice), args.Error(1)
}

func (m *MockPriceDeriver) SeedInitialPrices(ctx context.Context, product *domain.Product, allCurrencies bool) ([]domain.ProductPrice, error) {
	args := m.Called(ctx, product, allCurrencies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPrice), args.Error(1)
}
