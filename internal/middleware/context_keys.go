package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// payloadKey holds the decoded request body.
	payloadKey = contextKey("payload")
)

// WithUserID returns a copy of ctx carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(int64)
	return userID, ok
}

// GetRequestPayload returns the decoded body captured by RequestPayloadMiddleware.
// It is never nil.
func GetRequestPayload(c *gin.Context) map[string]any {
	if payload, ok := c.Request.Context().Value(payloadKey).(map[string]any); ok {
		return payload
	}
	return map[string]any{}
}
