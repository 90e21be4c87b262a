package mapping

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/models"
)

// ToDomainTimestamps converts model timestamps to domain timestamps
func ToDomainTimestamps(m models.Timestamps) domain.Timestamps {
	return domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

// ToModelTimestamps converts domain timestamps to model timestamps
func ToModelTimestamps(d domain.Timestamps) models.Timestamps {
	return models.Timestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}
