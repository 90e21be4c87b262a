package mapping

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		ID:           d.CurrencyID,
		Name:         d.Name,
		Symbol:       d.Symbol,
		ExchangeRate: d.ExchangeRate,
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:   m.ID,
		Name:         m.Name,
		Symbol:       m.Symbol,
		ExchangeRate: m.ExchangeRate,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
