package repositories

import (
	"context"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// EventLogReader defines read operations for the audit trail
type EventLogReader interface {
	// FindEventLogByID retrieves one entry with its user loaded.
	FindEventLogByID(ctx context.Context, eventLogID int64) (*domain.EventLog, error)

	// ListEventLogs filters, sorts and paginates entries.
	ListEventLogs(ctx context.Context, filter domain.EventLogFilter) (*domain.EventLogPage, error)

	// ListEventLogsForExport returns entries created within the range, newest first.
	ListEventLogsForExport(ctx context.Context, dateRange domain.DateRange) ([]domain.EventLog, error)
}

// EventLogWriter appends to the audit trail. There is deliberately no update or delete.
type EventLogWriter interface {
	// SaveEventLog inserts the entry and fills its ID and timestamps.
	SaveEventLog(ctx context.Context, entry *domain.EventLog) error
}

// EventLogRepositoryFacade combines all event log repository interfaces
type EventLogRepositoryFacade interface {
	EventLogReader
	EventLogWriter
}
