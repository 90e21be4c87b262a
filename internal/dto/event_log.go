package dto

import (
	"strconv"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// ListEventLogsParams are the query parameters accepted by the event log listing.
type ListEventLogsParams struct {
	EventType    string `form:"event_type" binding:"omitempty,oneof=POST PUT DELETE"`
	ResourceType string `form:"resource_type" binding:"omitempty,max=100"`
	UserID       *int64 `form:"user_id" binding:"omitempty,gt=0"`
	SortBy       string `form:"sort_by" binding:"omitempty,oneof=id created_at event_type resource_type user_id"`
	SortOrder    string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	PerPage      int    `form:"per_page" binding:"omitempty,min=1"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
}

// ToFilter converts the query parameters to a repository filter.
func (p ListEventLogsParams) ToFilter() domain.EventLogFilter {
	return domain.EventLogFilter{
		EventType:    domain.EventType(p.EventType),
		ResourceType: p.ResourceType,
		UserID:       p.UserID,
		SortBy:       domain.EventLogSortField(p.SortBy),
		SortOrder:    domain.SortOrder(p.SortOrder),
		Page:         p.Page,
		PerPage:      p.PerPage,
	}
}

// ExportEventLogsParams bounds an export by creation date (YYYY-MM-DD).
type ExportEventLogsParams struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// ToDateRange parses the dates and rejects an end before the start.
func (p ExportEventLogsParams) ToDateRange() (domain.DateRange, error) {
	var r domain.DateRange
	if p.StartDate != "" {
		start, err := time.Parse(time.DateOnly, p.StartDate)
		if err != nil {
			return r, apperrors.NewFieldValidationError("start_date", "The start date must be in the format YYYY-MM-DD.")
		}
		r.Start = &start
	}
	if p.EndDate != "" {
		end, err := time.Parse(time.DateOnly, p.EndDate)
		if err != nil {
			return r, apperrors.NewFieldValidationError("end_date", "The end date must be in the format YYYY-MM-DD.")
		}
		r.End = &end
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return r, apperrors.NewFieldValidationError("end_date", "The end date must be after or equal to the start date.")
	}
	return r, nil
}

// ExportFileName names the workbook after the requested range.
func (p ExportEventLogsParams) ExportFileName(now time.Time) string {
	switch {
	case p.StartDate != "" && p.EndDate != "":
		return "event_logs_" + p.StartDate + "_to_" + p.EndDate + "_" + now.Format("150405") + ".xlsx"
	case p.StartDate != "":
		return "event_logs_from_" + p.StartDate + "_" + now.Format("150405") + ".xlsx"
	case p.EndDate != "":
		return "event_logs_until_" + p.EndDate + "_" + now.Format("150405") + ".xlsx"
	default:
		return "event_logs_" + now.Format("2006-01-02_150405") + ".xlsx"
	}
}

// EventLogUser is the actor summary embedded in an event log response.
type EventLogUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventLogResponse defines the data returned for an audit entry.
type EventLogResponse struct {
	ID           int64          `json:"id"`
	User         *EventLogUser  `json:"user,omitempty"`
	UserID       *int64         `json:"user_id"`
	EventType    string         `json:"event_type"`
	ResourceType string         `json:"resource_type"`
	ResourceID   *int64         `json:"resource_id"`
	Endpoint     string         `json:"endpoint"`
	Method       string         `json:"method"`
	Data         map[string]any `json:"data"`
	IPAddress    *string        `json:"ip_address"`
	UserAgent    *string        `json:"user_agent"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

// ToEventLogResponse converts a domain.EventLog to its DTO.
func ToEventLogResponse(e *domain.EventLog) EventLogResponse {
	resp := EventLogResponse{
		ID:           e.EventLogID,
		UserID:       e.UserID,
		EventType:    string(e.EventType),
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Endpoint:     e.Endpoint,
		Method:       e.Method,
		Data:         e.Data,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		CreatedAt:    e.CreatedAt.Format(timestampLayout),
		UpdatedAt:    e.UpdatedAt.Format(timestampLayout),
	}
	if resp.Data == nil {
		resp.Data = map[string]any{}
	}
	if e.User != nil {
		resp.User = &EventLogUser{ID: e.User.UserID, Name: e.User.Name, Email: e.User.Email}
	}
	return resp
}

// EventLogListResponse is one page of audit entries.
type EventLogListResponse struct {
	Data []EventLogResponse `json:"data"`
	PageMeta
}

// ToEventLogListResponse converts a page of entries.
func ToEventLogListResponse(page *domain.EventLogPage, lastPage int) EventLogListResponse {
	items := make([]EventLogResponse, len(page.EventLogs))
	for i := range page.EventLogs {
		items[i] = ToEventLogResponse(&page.EventLogs[i])
	}
	return EventLogListResponse{
		Data: items,
		PageMeta: PageMeta{
			CurrentPage: page.Page,
			PerPage:     page.PerPage,
			Total:       page.Total,
			LastPage:    lastPage,
		},
	}
}

// ParseID parses a positive path identifier.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
