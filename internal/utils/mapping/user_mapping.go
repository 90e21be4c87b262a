package mapping

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:         d.UserID,
		Name:       d.Name,
		Email:      d.Email,
		Password:   d.PasswordHash,
		Timestamps: ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.Password,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
}
