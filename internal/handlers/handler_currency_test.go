package handlers_test

import (
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListCurrencies_Success() {
	suite.currencyService.On("ListCurrencies", mock.Anything).Return([]domain.Currency{
		{CurrencyID: 1, Name: "Euro", Symbol: "EUR", ExchangeRate: decimal.RequireFromString("0.92")},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	suite.True(env.Success)
	suite.Equal("Currencies retrieved successfully", env.Message)

	var data []dto.CurrencyResponse
	suite.decodeData(env, &data)
	suite.Require().Len(data, 1)
	suite.Equal("EUR", data[0].Symbol)
	suite.Equal("0.9200", data[0].ExchangeRate)
}

func (suite *HandlerTestSuite) TestCreateCurrency_PassesRequestMeta() {
	matchReq := mock.MatchedBy(func(req dto.CreateCurrencyRequest) bool {
		return req.Name == "Euro" && req.Symbol == "EUR" &&
			req.ExchangeRate != nil && req.ExchangeRate.Equal(decimal.RequireFromString("0.92"))
	})
	matchMeta := mock.MatchedBy(func(meta domain.RequestMeta) bool {
		return meta.ActorID != nil && *meta.ActorID == testUserID &&
			meta.Path == "api/v1/currencies" &&
			meta.Method == http.MethodPost &&
			meta.UserAgent == "handler-test" &&
			meta.IPAddress != "" &&
			meta.Payload["symbol"] == "EUR"
	})
	suite.currencyService.On("CreateCurrency", mock.Anything, matchReq, matchMeta).
		Return(&domain.Currency{CurrencyID: 3, Name: "Euro", Symbol: "EUR", ExchangeRate: decimal.RequireFromString("0.92")}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies", map[string]any{
		"name": "Euro", "symbol": "EUR", "exchange_rate": 0.92,
	})

	suite.Equal(http.StatusCreated, w.Code)
	env := suite.decode(w)
	suite.Equal("Currency created successfully", env.Message)
	var data dto.CurrencyResponse
	suite.decodeData(env, &data)
	suite.Equal(int64(3), data.ID)
}

func (suite *HandlerTestSuite) TestCreateCurrency_ValidationFailure() {
	w := suite.do(http.MethodPost, "/api/v1/currencies", map[string]any{
		"symbol": "TOO-LONG-SYMBOL", "exchange_rate": 1000000,
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	env := suite.decode(w)
	suite.False(env.Success)
	suite.Equal("Validation failed", env.Message)
	suite.Equal([]string{"The name field is required."}, env.Errors["name"])
	suite.Equal([]string{"The symbol field must not be greater than 10 characters."}, env.Errors["symbol"])
	suite.Equal([]string{"The exchange rate field must be less than or equal to 999999.9999."}, env.Errors["exchange_rate"])
	suite.currencyService.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateCurrency_NegativeRate() {
	w := suite.do(http.MethodPost, "/api/v1/currencies", `{"name":"Euro","symbol":"EUR","exchange_rate":"-1"}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	env := suite.decode(w)
	suite.Contains(env.Errors, "exchange_rate")
}

func (suite *HandlerTestSuite) TestCreateCurrency_DuplicateSymbol() {
	suite.currencyService.On("CreateCurrency", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewDuplicateError("symbol", "The symbol has already been taken.")).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies", map[string]any{
		"name": "Euro", "symbol": "EUR", "exchange_rate": 0.92,
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	env := suite.decode(w)
	suite.Equal([]string{"The symbol has already been taken."}, env.Errors["symbol"])
}

func (suite *HandlerTestSuite) TestCreateCurrency_MalformedBody() {
	w := suite.do(http.MethodPost, "/api/v1/currencies", `{"name":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(suite.decode(w).Success)
}

func (suite *HandlerTestSuite) TestGetCurrency_NotFound() {
	suite.currencyService.On("GetCurrencyByID", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("Currency not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Currency not found", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestGetCurrency_NonNumericID() {
	w := suite.do(http.MethodGet, "/api/v1/currencies/abc", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Currency not found", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestUpdateCurrency_Patch() {
	matchReq := mock.MatchedBy(func(req dto.UpdateCurrencyRequest) bool {
		return req.Name == nil && req.Symbol == nil && req.ExchangeRate != nil &&
			req.ExchangeRate.Equal(decimal.RequireFromString("1.1"))
	})
	suite.currencyService.On("UpdateCurrency", mock.Anything, int64(2), matchReq, mock.Anything).
		Return(&domain.Currency{CurrencyID: 2, Name: "Euro", Symbol: "EUR", ExchangeRate: decimal.RequireFromString("1.1")}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/currencies/2", map[string]any{"exchange_rate": "1.1"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Currency updated successfully", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestDeleteCurrency_InUse() {
	suite.currencyService.On("DeleteCurrency", mock.Anything, int64(1), mock.Anything).
		Return(apperrors.NewConflictError("Cannot delete currency because it has associated products")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/currencies/1", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Cannot delete currency because it has associated products", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestDeleteCurrency_Success() {
	suite.currencyService.On("DeleteCurrency", mock.Anything, int64(1), mock.MatchedBy(func(meta domain.RequestMeta) bool {
		return meta.Method == http.MethodDelete && meta.Path == "api/v1/currencies/1"
	})).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/currencies/1", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	suite.True(env.Success)
	suite.Equal("Currency deleted successfully", env.Message)
}

func (suite *HandlerTestSuite) TestListCurrencies_ServiceFailure() {
	suite.currencyService.On("ListCurrencies", mock.Anything).Return(nil, errBoom).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list currencies", suite.decode(w).Message)
}
