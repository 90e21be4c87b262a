package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondSuccess writes the standard success envelope.
func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.APIResponse{Success: true, Message: message, Data: data})
}

// respondError maps a service error onto the error envelope.
// Anything that is not a known application error becomes a 500 with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromContext(c)

	var fieldErr *apperrors.FieldError
	if errors.As(err, &fieldErr) {
		logger.Warn("Request rejected", slog.String("field", fieldErr.Field), slog.String("error", err.Error()))
		c.JSON(fieldErr.Code, dto.ErrorResponse{
			Success: false,
			Message: fieldErr.Message,
			Errors:  map[string][]string{fieldErr.Field: {fieldErr.Message}},
		})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code > 0 {
		logger.Warn("Request failed", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, dto.ErrorResponse{Success: false, Message: appErr.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: middleware.UnauthenticatedMessage})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Message: "Resource not found"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Message: fallback})
	}
}

// pathID parses the named path parameter. On failure it writes a 404 with notFound and returns false.
func pathID(c *gin.Context, name, notFound string) (int64, bool) {
	id, ok := dto.ParseID(c.Param(name))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Message: notFound})
		return 0, false
	}
	return id, true
}
