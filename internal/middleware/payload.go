package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// MaxRequestBodyBytes is the largest body a mutating request may carry.
const MaxRequestBodyBytes = 1 << 20

// RequestTooLargeMessage is returned with a 413 when a body exceeds MaxRequestBodyBytes.
const RequestTooLargeMessage = "Request body too large."

// RequestPayloadMiddleware decodes the JSON body of mutating requests into a map
// so it can be stored verbatim with the audit entry. The body is restored for binding.
// Bodies over MaxRequestBodyBytes are rejected rather than truncated.
func RequestPayloadMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		payload := map[string]any{}
		if c.Request.Body != nil {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxRequestBodyBytes+1))
			if err != nil {
				GetLoggerFromContext(c).Warn("Failed to read request body", slog.String("error", err.Error()))
			}
			if len(raw) > MaxRequestBodyBytes {
				GetLoggerFromContext(c).Warn("Request body too large", slog.Int64("content_length", c.Request.ContentLength))
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Success: false, Message: RequestTooLargeMessage})
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			if len(bytes.TrimSpace(raw)) > 0 {
				dec := json.NewDecoder(bytes.NewReader(raw))
				dec.UseNumber()
				var decoded map[string]any
				if err := dec.Decode(&decoded); err == nil && decoded != nil {
					payload = decoded
				}
			}
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), payloadKey, payload))
		c.Next()
	}
}
