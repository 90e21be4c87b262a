package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/utils/pagination"
)

type eventLogService struct {
	BaseService
	eventLogRepo portsrepo.EventLogRepositoryFacade
	maxPerPage   int
}

// EventLogOption configures the event log service.
type EventLogOption func(*eventLogService)

// WithMaxPerPage caps the page size of event log listings.
func WithMaxPerPage(n int) EventLogOption {
	return func(s *eventLogService) {
		if n > 0 {
			s.maxPerPage = n
		}
	}
}

// NewEventLogService creates the audit trail service.
func NewEventLogService(repo portsrepo.EventLogRepositoryFacade, options ...EventLogOption) portssvc.EventLogSvcFacade {
	svc := &eventLogService{
		eventLogRepo: repo,
		maxPerPage:   pagination.MaxPerPage,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EventLogSvcFacade = (*eventLogService)(nil)

func (s *eventLogService) Record(ctx context.Context, eventType domain.EventType, resource domain.ResourceType,
	resourceID *int64, meta domain.RequestMeta, extras map[string]any) domain.AuditResult {
	// The mutation has already committed, so the entry is written even if the client went away.
	ctx = context.WithoutCancel(ctx)

	entry := &domain.EventLog{
		UserID:       meta.ActorID,
		EventType:    eventType,
		ResourceType: resource.String(),
		ResourceID:   resourceID,
		Endpoint:     meta.Path,
		Method:       meta.Method,
		Data:         domain.BuildEventData(meta.Payload, extras),
		IPAddress:    optionalString(meta.IPAddress),
		UserAgent:    optionalString(meta.UserAgent),
	}
	if entry.Method == "" {
		entry.Method = string(eventType)
	}

	if err := s.eventLogRepo.SaveEventLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record audit entry",
			slog.String("event_type", string(eventType)),
			slog.String("resource_type", entry.ResourceType),
			slog.Any("resource_id", resourceID))
		return domain.AuditResult{Err: fmt.Errorf("failed to record %s %s event: %w", eventType, entry.ResourceType, err)}
	}

	s.LogDebug(ctx, "Audit entry recorded",
		slog.Int64("event_log_id", entry.EventLogID),
		slog.String("event_type", string(eventType)),
		slog.String("resource_type", entry.ResourceType))
	return domain.AuditResult{Entry: entry}
}

func (s *eventLogService) GetEventLogByID(ctx context.Context, eventLogID int64) (*domain.EventLog, error) {
	entry, err := s.eventLogRepo.FindEventLogByID(ctx, eventLogID)
	if err != nil {
		return nil, notFoundAs(err, "Event log not found")
	}
	return entry, nil
}

func (s *eventLogService) ListEventLogs(ctx context.Context, filter domain.EventLogFilter) (*domain.EventLogPage, error) {
	filter.Page, filter.PerPage = pagination.Normalize(filter.Page, filter.PerPage, s.maxPerPage)
	if !filter.SortBy.Valid() {
		filter.SortBy = domain.EventLogSortCreatedAt
	}
	if !filter.SortOrder.Valid() {
		filter.SortOrder = domain.SortDesc
	}
	if filter.EventType != "" && !filter.EventType.Valid() {
		filter.EventType = ""
	}

	page, err := s.eventLogRepo.ListEventLogs(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list event logs")
		return nil, fmt.Errorf("failed to list event logs: %w", err)
	}
	if page.EventLogs == nil {
		page.EventLogs = []domain.EventLog{}
	}
	return page, nil
}

func (s *eventLogService) ListEventLogsForExport(ctx context.Context, dateRange domain.DateRange) ([]domain.EventLog, error) {
	entries, err := s.eventLogRepo.ListEventLogsForExport(ctx, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list event logs for export")
		return nil, fmt.Errorf("failed to list event logs for export: %w", err)
	}
	return entries, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
