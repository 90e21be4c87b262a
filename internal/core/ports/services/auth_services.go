package services

import (
	"context"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/dto"
)

// IssuedToken is a signed access token and its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// AuthSvcFacade defines account registration and token issuance.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *IssuedToken, error)
	// Login fails with ErrUnauthorized for an unknown email or a wrong password alike.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *IssuedToken, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	// ValidateToken returns the user ID carried by a valid access token.
	ValidateToken(ctx context.Context, token string) (int64, error)
}
