package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/export"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/SscSPs/product_pricing_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// eventLogHandler exposes the audit trail read-only.
type eventLogHandler struct {
	eventLogService portssvc.EventLogReaderSvc
}

func newEventLogHandler(es portssvc.EventLogReaderSvc) *eventLogHandler {
	return &eventLogHandler{eventLogService: es}
}

func registerEventLogRoutes(rg *gin.RouterGroup, eventLogService portssvc.EventLogReaderSvc) {
	h := newEventLogHandler(eventLogService)

	eventLogs := rg.Group("/event-logs")
	{
		eventLogs.GET("", h.listEventLogs)
		eventLogs.GET("/export", h.exportEventLogs)
		eventLogs.GET("/:id", h.getEventLog)
	}
}

// listEventLogs godoc
// @Summary List audit entries
// @Tags event-logs
// @Produce  json
// @Param event_type query string false "Event type" Enums(POST, PUT, DELETE)
// @Param resource_type query string false "Resource type, e.g. Product"
// @Param user_id query int false "Actor user ID"
// @Param sort_by query string false "Sort column" Enums(id, created_at, event_type, resource_type, user_id)
// @Param sort_order query string false "Sort direction" Enums(asc, desc)
// @Param per_page query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.EventLogListResponse}
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /event-logs [get]
func (h *eventLogHandler) listEventLogs(c *gin.Context) {
	var params dto.ListEventLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.eventLogService.ListEventLogs(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list event logs")
		return
	}

	respondSuccess(c, http.StatusOK, "Event logs retrieved successfully",
		dto.ToEventLogListResponse(page, pagination.LastPage(page.Total, page.PerPage)))
}

// getEventLog godoc
// @Summary Get an audit entry
// @Tags event-logs
// @Produce  json
// @Param   id path int true "Event log ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventLogResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /event-logs/{id} [get]
func (h *eventLogHandler) getEventLog(c *gin.Context) {
	eventLogID, ok := pathID(c, "id", "Event log not found")
	if !ok {
		return
	}

	entry, err := h.eventLogService.GetEventLogByID(c.Request.Context(), eventLogID)
	if err != nil {
		respondError(c, err, "Failed to retrieve event log")
		return
	}
	respondSuccess(c, http.StatusOK, "Event log retrieved successfully", dto.ToEventLogResponse(entry))
}

// exportEventLogs godoc
// @Summary Export audit entries
// @Description Downloads audit entries created within the optional date range as an xlsx workbook, newest first
// @Tags event-logs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "First day (YYYY-MM-DD)"
// @Param end_date query string false "Last day (YYYY-MM-DD), not before start_date"
// @Success 200 {file} file
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /event-logs/export [get]
func (h *eventLogHandler) exportEventLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ExportEventLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	dateRange, err := params.ToDateRange()
	if err != nil {
		respondError(c, err, "Invalid export range")
		return
	}

	logs, err := h.eventLogService.ListEventLogsForExport(c.Request.Context(), dateRange)
	if err != nil {
		respondError(c, err, "Failed to export event logs")
		return
	}
	logger.Info("Exporting event logs", slog.Int("count", len(logs)),
		slog.String("start_date", params.StartDate), slog.String("end_date", params.EndDate))

	wb, err := export.EventLogs(logs)
	if err != nil {
		respondError(c, err, "Failed to export event logs")
		return
	}
	sendWorkbook(c, wb, params.ExportFileName(time.Now()))
}
