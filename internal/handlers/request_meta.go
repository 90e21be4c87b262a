package handlers

import (
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestMeta collects what the audit trail needs to know about the current request.
func requestMeta(c *gin.Context) domain.RequestMeta {
	meta := domain.RequestMeta{
		Payload:   middleware.GetRequestPayload(c),
		Path:      strings.TrimPrefix(c.Request.URL.Path, "/"),
		Method:    c.Request.Method,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		meta.ActorID = &userID
	}
	return meta
}
