package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/export"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exportTimestampLayout is appended to download file names.
const exportTimestampLayout = "2006-01-02_150405"

// sendWorkbook streams wb as an attachment and releases it.
func sendWorkbook(c *gin.Context, wb *export.Workbook, fileName string) {
	logger := middleware.GetLoggerFromContext(c)
	defer func() {
		if err := wb.Close(); err != nil {
			logger.Warn("Failed to close workbook", slog.String("error", err.Error()))
		}
	}()

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	c.Status(http.StatusOK)
	if _, err := wb.WriteTo(c.Writer); err != nil {
		// Headers are already sent; all that is left is to record the failure.
		logger.Error("Failed to stream workbook", slog.String("file", fileName), slog.String("error", err.Error()))
		return
	}
	logger.Info("Workbook exported", slog.String("file", fileName))
}
