package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

func sampleProduct() *domain.Product {
	now := time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	return &domain.Product{
		ProductID:         10,
		Name:              "Widget",
		Description:       "A widget",
		Price:             decimal.RequireFromString("100.00"),
		CurrencyID:        1,
		TaxCost:           decimal.RequireFromString("5.50"),
		ManufacturingCost: decimal.Zero,
		Timestamps:        domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		Currency:          &domain.Currency{CurrencyID: 1, Name: "US Dollar", Symbol: "USD", ExchangeRate: decimal.NewFromInt(1)},
	}
}

func (suite *HandlerTestSuite) TestCreateProduct_Success() {
	matchReq := mock.MatchedBy(func(req dto.CreateProductRequest) bool {
		return req.Name == "Widget" && req.CurrencyID == 1 && req.SeedAllCurrencies() &&
			req.Price != nil && req.Price.Equal(decimal.NewFromInt(100)) && req.TaxCost == nil
	})
	suite.productService.On("CreateProduct", mock.Anything, matchReq, mock.Anything).Return(sampleProduct(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Widget", "description": "A widget", "price": 100, "currency_id": 1, "create_product_prices": true,
	})

	suite.Equal(http.StatusCreated, w.Code)
	env := suite.decode(w)
	suite.Equal("Product created successfully", env.Message)
	var data dto.ProductResponse
	suite.decodeData(env, &data)
	suite.Equal(int64(10), data.ID)
	suite.Equal(100.0, data.Price)
	suite.Equal(5.5, data.TaxCost)
	suite.Require().NotNil(data.Currency)
	suite.Equal("USD", data.Currency.Symbol)
}

func (suite *HandlerTestSuite) TestCreateProduct_ValidationFailure() {
	w := suite.do(http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Widget", "price": -1, "tax_cost": -2,
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	env := suite.decode(w)
	suite.Equal([]string{"The description field is required."}, env.Errors["description"])
	suite.Equal([]string{"The currency id field is required."}, env.Errors["currency_id"])
	suite.Equal([]string{"The price field must be greater than or equal to 0."}, env.Errors["price"])
	suite.Contains(env.Errors, "tax_cost")
}

func (suite *HandlerTestSuite) TestCreateProduct_MoneyAboveColumnRange() {
	w := suite.do(http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Widget", "description": "A widget", "price": 1e11, "currency_id": 1, "tax_cost": 1e11,
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	env := suite.decode(w)
	suite.Equal([]string{"The price field must be less than or equal to 9999999999.99."}, env.Errors["price"])
	suite.Equal([]string{"The tax cost field must be less than or equal to 9999999999.99."}, env.Errors["tax_cost"])
	suite.productService.AssertNotCalled(suite.T(), "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateProduct_MoneyAtColumnLimit() {
	suite.productService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req dto.CreateProductRequest) bool {
		return req.Price != nil && req.Price.Equal(decimal.RequireFromString("9999999999.99"))
	}), mock.Anything).Return(sampleProduct(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Widget", "description": "A widget", "price": 9999999999.99, "currency_id": 1,
	})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateProduct_UnknownCurrency() {
	suite.productService.On("CreateProduct", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")).Once()

	w := suite.do(http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Widget", "description": "A widget", "price": 100, "currency_id": 42,
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal([]string{"The selected currency id is invalid."}, suite.decode(w).Errors["currency_id"])
}

func (suite *HandlerTestSuite) TestSearchProducts_Success() {
	matchCriteria := mock.MatchedBy(func(c domain.ProductSearchCriteria) bool {
		return c.Name == "wid" && c.SortBy == domain.ProductSortPrice && c.SortOrder == domain.SortDesc &&
			c.MinPrice != nil && c.MinPrice.Equal(decimal.NewFromInt(10)) &&
			c.MaxPrice != nil && c.MaxPrice.Equal(decimal.NewFromInt(200)) &&
			c.PerPage == 1 && c.Page == 2
	})
	suite.productService.On("SearchProducts", mock.Anything, matchCriteria).Return(&domain.ProductPage{
		Products: []domain.Product{*sampleProduct()},
		Total:    3,
		Page:     2,
		PerPage:  1,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/products/search?name=wid&min_price=10&max_price=200&sort_by=price&sort_order=desc&per_page=1&page=2", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	suite.Equal("Products found successfully", env.Message)
	var data dto.ProductSearchResponse
	suite.decodeData(env, &data)
	suite.Len(data.Data, 1)
	suite.Equal(2, data.CurrentPage)
	suite.Equal(1, data.PerPage)
	suite.Equal(3, data.Total)
	suite.Equal(3, data.LastPage)
}

func (suite *HandlerTestSuite) TestSearchProducts_InvalidParameters() {
	cases := map[string]string{
		"sort_by":   "/api/v1/products/search?sort_by=color",
		"per_page":  "/api/v1/products/search?per_page=101",
		"max_price": "/api/v1/products/search?min_price=50&max_price=10",
		"min_price": "/api/v1/products/search?min_price=abc",
	}
	for field, path := range cases {
		w := suite.do(http.MethodGet, path, nil)

		suite.Equal(http.StatusUnprocessableEntity, w.Code, path)
		suite.Contains(suite.decode(w).Errors, field, path)
	}
}

func (suite *HandlerTestSuite) TestUpdateProduct_NotFound() {
	suite.productService.On("UpdateProduct", mock.Anything, int64(5), mock.Anything, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("Product not found")).Once()

	w := suite.do(http.MethodPut, "/api/v1/products/5", map[string]any{"name": "New"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Product not found", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestUpdateProduct_MoneyAboveColumnRange() {
	w := suite.do(http.MethodPut, "/api/v1/products/5", map[string]any{"manufacturing_cost": 1e11})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal([]string{"The manufacturing cost field must be less than or equal to 9999999999.99."},
		suite.decode(w).Errors["manufacturing_cost"])
	suite.productService.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteProduct_Success() {
	suite.productService.On("DeleteProduct", mock.Anything, int64(10), mock.Anything).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/products/10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Product deleted successfully", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestDeriveProductPrice_CreatedThenUpdated() {
	price := domain.ProductPrice{
		ProductPriceID: 4,
		ProductID:      10,
		CurrencyID:     2,
		Price:          decimal.RequireFromString("92.46"),
		Currency:       &domain.Currency{CurrencyID: 2, Name: "Euro", Symbol: "EUR", ExchangeRate: decimal.RequireFromString("0.9246")},
	}
	matchMeta := mock.MatchedBy(func(meta domain.RequestMeta) bool {
		return meta.Path == "api/v1/products/10/prices" && meta.Method == http.MethodPost
	})
	suite.priceService.On("DerivePrice", mock.Anything, int64(10), int64(2), matchMeta).
		Return(&domain.DerivedPrice{Price: price, Created: true}, nil).Once()
	suite.priceService.On("DerivePrice", mock.Anything, int64(10), int64(2), matchMeta).
		Return(&domain.DerivedPrice{Price: price, Created: false}, nil).Once()

	first := suite.do(http.MethodPost, "/api/v1/products/10/prices", map[string]any{"currency_id": 2})
	suite.Equal(http.StatusCreated, first.Code)
	env := suite.decode(first)
	suite.Equal("Product price created successfully", env.Message)
	var data dto.ProductPriceResponse
	suite.decodeData(env, &data)
	suite.Equal(92.46, data.Price)
	suite.Equal(int64(2), data.CurrencyID)

	second := suite.do(http.MethodPost, "/api/v1/products/10/prices", map[string]any{"currency_id": 2})
	suite.Equal(http.StatusOK, second.Code)
	suite.Equal("Product price updated successfully", suite.decode(second).Message)
}

func (suite *HandlerTestSuite) TestDeriveProductPrice_MissingCurrency() {
	w := suite.do(http.MethodPost, "/api/v1/products/10/prices", map[string]any{})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal([]string{"The currency id field is required."}, suite.decode(w).Errors["currency_id"])
}

func (suite *HandlerTestSuite) TestDeriveProductPrice_BaseCurrencyRejected() {
	suite.priceService.On("DerivePrice", mock.Anything, int64(10), int64(1), mock.Anything).
		Return(nil, apperrors.NewFieldValidationError("currency_id", "The currency must be different from the product's base currency.")).Once()

	w := suite.do(http.MethodPost, "/api/v1/products/10/prices", map[string]any{"currency_id": 1})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.decode(w).Errors, "currency_id")
}

func (suite *HandlerTestSuite) TestDeriveProductPrice_ConvertedPriceOutOfRange() {
	suite.priceService.On("DerivePrice", mock.Anything, int64(10), int64(3), mock.Anything).
		Return(nil, fmt.Errorf("failed to store derived price: %w",
			apperrors.NewFieldValidationError("price", "The price field is out of range."))).Once()

	w := suite.do(http.MethodPost, "/api/v1/products/10/prices", map[string]any{"currency_id": 3})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal([]string{"The price field is out of range."}, suite.decode(w).Errors["price"])
}

func (suite *HandlerTestSuite) TestListProductPrices_UnknownProduct() {
	suite.priceService.On("ListProductPrices", mock.Anything, int64(77)).
		Return(nil, apperrors.NewNotFoundError("Product not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/products/77/prices", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestExportProducts() {
	suite.productService.On("ListProducts", mock.Anything).Return([]domain.Product{*sampleProduct()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/products/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(export.ContentType, w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "products_")
	suite.Contains(w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	suite.Require().NoError(err)
	defer f.Close()
	rows, err := f.GetRows(export.ProductsSheet)
	suite.Require().NoError(err)
	suite.Len(rows, 2)
	suite.Equal("Widget", rows[1][1])
}

func (suite *HandlerTestSuite) TestExportProductPrices() {
	suite.priceService.On("ListPricesForExport", mock.Anything).Return([]domain.ProductPriceExportRow{
		{ProductName: "Widget", CurrencyName: "Euro", Price: decimal.RequireFromString("92.46")},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/product-prices/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "product_prices_")
}
