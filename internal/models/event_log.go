package models

// EventLog represents a row of the events_log table.
type EventLog struct {
	ID           int64          `db:"id"`
	UserID       *int64         `db:"user_id"`
	EventType    string         `db:"event_type"`
	ResourceType string         `db:"resource_type"`
	ResourceID   *int64         `db:"resource_id"`
	Endpoint     string         `db:"endpoint"`
	Method       string         `db:"method"`
	Data         map[string]any `db:"data"` // jsonb
	IPAddress    *string        `db:"ip_address"`
	UserAgent    *string        `db:"user_agent"`
	Timestamps
}
