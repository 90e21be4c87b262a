package mapping

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/models"
)

// ToModelEventLog converts a domain EventLog to a model EventLog
func ToModelEventLog(d domain.EventLog) models.EventLog {
	return models.EventLog{
		ID:           d.EventLogID,
		UserID:       d.UserID,
		EventType:    string(d.EventType),
		ResourceType: d.ResourceType,
		ResourceID:   d.ResourceID,
		Endpoint:     d.Endpoint,
		Method:       d.Method,
		Data:         d.Data,
		IPAddress:    d.IPAddress,
		UserAgent:    d.UserAgent,
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainEventLog converts a model EventLog and its optional actor to a domain EventLog
func ToDomainEventLog(m models.EventLog, user *models.User) domain.EventLog {
	d := domain.EventLog{
		EventLogID:   m.ID,
		UserID:       m.UserID,
		EventType:    domain.EventType(m.EventType),
		ResourceType: m.ResourceType,
		ResourceID:   m.ResourceID,
		Endpoint:     m.Endpoint,
		Method:       m.Method,
		Data:         m.Data,
		IPAddress:    m.IPAddress,
		UserAgent:    m.UserAgent,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
	if user != nil {
		u := ToDomainUser(*user)
		d.User = &u
	}
	return d
}
