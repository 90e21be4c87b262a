package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// loginRate throttles credential guessing per client IP.
const loginRate = "5-M"

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public auth routes and the authenticated /me route.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	rate, _ := limiter.NewRateFromFormatted(loginRate)
	loginLimiter := middleware.RateLimit(limiter.New(memory.NewStore(), rate))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", loginLimiter, h.login)
		auth.GET("/me", middleware.AuthMiddleware(authService), h.me)
	}
}

func toAuthResponse(user *domain.User, token *portssvc.IssuedToken) dto.AuthResponse {
	return dto.AuthResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// register godoc
// @Summary Register new user
// @Description Creates an account and returns an access token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 422 {object} dto.ErrorResponse "Validation failed or email taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	logger.Info("User registered", slog.Int64("user_id", user.UserID))
	respondSuccess(c, http.StatusCreated, "User registered successfully", toAuthResponse(user, token))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 422 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	logger.Info("User logged in", slog.Int64("user_id", user.UserID))
	respondSuccess(c, http.StatusOK, "Logged in successfully", toAuthResponse(user, token))
}

// me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized, "Unauthenticated")
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	respondSuccess(c, http.StatusOK, "User retrieved successfully", dto.ToUserResponse(user))
}
