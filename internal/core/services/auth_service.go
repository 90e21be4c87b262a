package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/utils"
)

// TokenConfig holds the parameters access tokens are signed with.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   TokenConfig
}

// NewAuthService creates the registration and login service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens TokenConfig) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, tokens: tokens}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *portssvc.IssuedToken, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, nil, apperrors.NewDuplicateError("email", "The email has already been taken.")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, nil, err
	}

	user := &domain.User{Name: req.Name, Email: email, PasswordHash: hash}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.issue(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.Int64("user_id", user.UserID))
		return nil, nil, err
	}
	s.LogInfo(ctx, "User registered", slog.Int64("user_id", user.UserID))
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *portssvc.IssuedToken, error) {
	invalid := apperrors.NewFieldValidationError("email", "The provided credentials are incorrect.")

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, invalid
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := utils.CheckPasswordHash(req.Password, user.PasswordHash)
	if err != nil {
		s.LogError(ctx, err, "Stored password hash is unreadable", slog.Int64("user_id", user.UserID))
		return nil, nil, invalid
	}
	if !ok {
		s.LogDebug(ctx, "Password mismatch", slog.Int64("user_id", user.UserID))
		return nil, nil, invalid
	}

	token, err := s.issue(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.Int64("user_id", user.UserID))
		return nil, nil, err
	}
	return user, token, nil
}

func (s *authService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}

func (s *authService) ValidateToken(_ context.Context, token string) (int64, error) {
	userID, err := utils.ParseAndValidateJWT(token, s.tokens.Secret, s.tokens.Issuer)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	return userID, nil
}

func (s *authService) issue(userID int64) (*portssvc.IssuedToken, error) {
	signed, expiresAt, err := utils.GenerateJWT(userID, s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer)
	if err != nil {
		return nil, err
	}
	return &portssvc.IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}
