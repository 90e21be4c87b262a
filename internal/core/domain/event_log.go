package domain

import (
	"fmt"
	"time"
)

// EventType mirrors the HTTP verb of the mutation being recorded.
type EventType string

const (
	EventTypeCreate EventType = "POST"
	EventTypeUpdate EventType = "PUT"
	EventTypeDelete EventType = "DELETE"
)

// Valid reports whether t is one of the three known event types.
func (t EventType) Valid() bool {
	return t == EventTypeCreate || t == EventTypeUpdate || t == EventTypeDelete
}

// ResourceType is the closed set of resources whose mutations are audited.
type ResourceType int

const (
	ResourceProduct ResourceType = iota + 1
	ResourceCurrency
	ResourceProductPrice
)

var resourceTypeNames = map[ResourceType]string{
	ResourceProduct:      "Product",
	ResourceCurrency:     "Currency",
	ResourceProductPrice: "ProductPrice",
}

// String returns the token stored in the resource_type column.
func (r ResourceType) String() string {
	if name, ok := resourceTypeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ResourceType(%d)", int(r))
}

// ParseResourceType maps a stored token back to its ResourceType.
func ParseResourceType(s string) (ResourceType, bool) {
	for r, name := range resourceTypeNames {
		if name == s {
			return r, true
		}
	}
	return 0, false
}

// MarshalText serialises the resource type as its string token.
func (r ResourceType) MarshalText() ([]byte, error) {
	if _, ok := resourceTypeNames[r]; !ok {
		return nil, fmt.Errorf("unknown resource type %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText parses a string token into a ResourceType.
func (r *ResourceType) UnmarshalText(b []byte) error {
	parsed, ok := ParseResourceType(string(b))
	if !ok {
		return fmt.Errorf("unknown resource type %q", string(b))
	}
	*r = parsed
	return nil
}

// RequestMeta carries everything about the inbound request an audit entry needs.
// It is passed explicitly from the handler down to the mutating service.
type RequestMeta struct {
	ActorID   *int64         // nil when unauthenticated
	Payload   map[string]any // whole decoded request body
	Path      string
	Method    string
	IPAddress string
	UserAgent string
}

// PayloadKey is the key under which the raw request body is stored in EventLog.Data.
const PayloadKey = "payload"

// EventLog is an append-only audit record of one mutation.
type EventLog struct {
	EventLogID   int64          `json:"eventLogID"`
	UserID       *int64         `json:"userID"`
	EventType    EventType      `json:"eventType"`
	ResourceType string         `json:"resourceType"`
	ResourceID   *int64         `json:"resourceID"`
	Endpoint     string         `json:"endpoint"`
	Method       string         `json:"method"`
	Data         map[string]any `json:"data"`
	IPAddress    *string        `json:"ipAddress"`
	UserAgent    *string        `json:"userAgent"`
	Timestamps

	// User is populated by reads that join the actor.
	User *User `json:"user,omitempty"`
}

// BuildEventData merges extras at the top level next to the raw payload.
// The payload key always holds the request body, even if extras contain the same key.
func BuildEventData(payload map[string]any, extras map[string]any) map[string]any {
	data := make(map[string]any, len(extras)+1)
	for k, v := range extras {
		data[k] = v
	}
	if payload == nil {
		payload = map[string]any{}
	}
	data[PayloadKey] = payload
	return data
}

// AuditResult reports the outcome of recording an audit entry.
// A failed result is expected to be logged and then discarded by the caller.
type AuditResult struct {
	Entry *EventLog
	Err   error
}

// OK reports whether the entry was written.
func (r AuditResult) OK() bool {
	return r.Err == nil && r.Entry != nil
}

// EventLogSortField enumerates the columns event logs can be ordered by.
type EventLogSortField string

const (
	EventLogSortID           EventLogSortField = "id"
	EventLogSortCreatedAt    EventLogSortField = "created_at"
	EventLogSortEventType    EventLogSortField = "event_type"
	EventLogSortResourceType EventLogSortField = "resource_type"
	EventLogSortUserID       EventLogSortField = "user_id"
)

// Valid reports whether f is a known sort field.
func (f EventLogSortField) Valid() bool {
	switch f {
	case EventLogSortID, EventLogSortCreatedAt, EventLogSortEventType,
		EventLogSortResourceType, EventLogSortUserID:
		return true
	}
	return false
}

// EventLogFilter narrows an event log listing. Zero values are ignored.
type EventLogFilter struct {
	EventType    EventType
	ResourceType string
	UserID       *int64
	SortBy       EventLogSortField
	SortOrder    SortOrder
	Page         int
	PerPage      int
}

// EventLogPage is one page of event logs.
type EventLogPage struct {
	EventLogs []EventLog
	Total     int
	Page      int
	PerPage   int
}

// DateRange bounds an export by creation date, inclusive on both calendar days.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}
