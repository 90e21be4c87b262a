package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestRegister_Success() {
	user := &domain.User{UserID: 9, Name: "Ada", Email: "ada@example.com"}
	token := &portssvc.IssuedToken{Token: "signed", ExpiresAt: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)}
	suite.authService.On("Register", mock.Anything, dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}).
		Return(user, token, nil).Once()

	w := suite.doWithToken(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Ada", "email": "ada@example.com", "password": "secret123",
	}, "")

	suite.Equal(http.StatusCreated, w.Code)
	env := suite.decode(w)
	var data dto.AuthResponse
	suite.decodeData(env, &data)
	suite.Equal("signed", data.AccessToken)
	suite.Equal("Bearer", data.TokenType)
	suite.Equal("2026-02-05T00:00:00Z", data.ExpiresAt)
	suite.Equal(int64(9), data.User.ID)
	suite.authService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.doWithToken(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Ada", "email": "not-an-email", "password": "short",
	}, "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	env := suite.decode(w)
	suite.Equal([]string{"The password field must be at least 8 characters."}, env.Errors["password"])
	suite.Equal([]string{"The email field must be a valid email address."}, env.Errors["email"])
}

func (suite *HandlerTestSuite) TestLogin_BadCredentials() {
	suite.authService.On("Login", mock.Anything, mock.Anything).
		Return(nil, nil, apperrors.NewFieldValidationError("email", "The provided credentials are incorrect.")).Once()

	w := suite.doWithToken(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email": "ada@example.com", "password": "wrong-password",
	}, "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal([]string{"The provided credentials are incorrect."}, suite.decode(w).Errors["email"])
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.authService.On("Login", mock.Anything, mock.Anything).
		Return(nil, nil, apperrors.NewFieldValidationError("email", "The provided credentials are incorrect."))

	var last int
	for i := 0; i < 6; i++ {
		last = suite.doWithToken(http.MethodPost, "/api/v1/auth/login", map[string]any{
			"email": "ada@example.com", "password": "wrong-password",
		}, "").Code
	}

	suite.Equal(http.StatusTooManyRequests, last)
}

func (suite *HandlerTestSuite) TestMe() {
	suite.authService.On("GetUserByID", mock.Anything, testUserID).
		Return(&domain.User{UserID: testUserID, Name: "Ada", Email: "ada@example.com"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/me", nil)

	suite.Equal(http.StatusOK, w.Code)
	var data dto.UserResponse
	suite.decodeData(suite.decode(w), &data)
	suite.Equal(testUserID, data.ID)
}

func (suite *HandlerTestSuite) TestMe_Unauthenticated() {
	w := suite.doWithToken(http.MethodGet, "/api/v1/auth/me", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Unauthenticated.", suite.decode(w).Message)
}
