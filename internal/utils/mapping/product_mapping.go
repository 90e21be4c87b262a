package mapping

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ID:                d.ProductID,
		Name:              d.Name,
		Description:       d.Description,
		Price:             d.Price,
		CurrencyID:        d.CurrencyID,
		TaxCost:           d.TaxCost,
		ManufacturingCost: d.ManufacturingCost,
		Timestamps:        ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainProduct converts a model Product and its optional base currency to a domain Product
func ToDomainProduct(m models.Product, currency *models.Currency) domain.Product {
	d := domain.Product{
		ProductID:         m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Price:             m.Price,
		CurrencyID:        m.CurrencyID,
		TaxCost:           m.TaxCost,
		ManufacturingCost: m.ManufacturingCost,
		Timestamps:        ToDomainTimestamps(m.Timestamps),
	}
	if currency != nil {
		c := ToDomainCurrency(*currency)
		d.Currency = &c
	}
	return d
}

// ToModelProductPrice converts a domain ProductPrice to a model ProductPrice
func ToModelProductPrice(d domain.ProductPrice) models.ProductPrice {
	return models.ProductPrice{
		ID:         d.ProductPriceID,
		ProductID:  d.ProductID,
		CurrencyID: d.CurrencyID,
		Price:      d.Price,
		Timestamps: ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainProductPrice converts a model ProductPrice and its optional currency to a domain ProductPrice
func ToDomainProductPrice(m models.ProductPrice, currency *models.Currency) domain.ProductPrice {
	d := domain.ProductPrice{
		ProductPriceID: m.ID,
		ProductID:      m.ProductID,
		CurrencyID:     m.CurrencyID,
		Price:          m.Price,
		Timestamps:     ToDomainTimestamps(m.Timestamps),
	}
	if currency != nil {
		c := ToDomainCurrency(*currency)
		d.Currency = &c
	}
	return d
}
