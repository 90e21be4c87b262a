package services

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// AuditRecorderSvc appends entries to the audit trail.
type AuditRecorderSvc interface {
	// Record never fails the caller's operation. A failed write is logged
	// and reported through the returned result.
	Record(ctx context.Context, eventType domain.EventType, resource domain.ResourceType,
		resourceID *int64, meta domain.RequestMeta, extras map[string]any) domain.AuditResult
}

// EventLogReaderSvc defines read operations for the audit trail
type EventLogReaderSvc interface {
	GetEventLogByID(ctx context.Context, eventLogID int64) (*domain.EventLog, error)
	ListEventLogs(ctx context.Context, filter domain.EventLogFilter) (*domain.EventLogPage, error)
	ListEventLogsForExport(ctx context.Context, dateRange domain.DateRange) ([]domain.EventLog, error)
}

// EventLogSvcFacade combines all event log service interfaces
type EventLogSvcFacade interface {
	AuditRecorderSvc
	EventLogReaderSvc
}
