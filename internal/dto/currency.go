package dto

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Name         string           `json:"name" binding:"required,max=255"`
	Symbol       string           `json:"symbol" binding:"required,max=10"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate" binding:"required,gte=0,lte=999999.9999"`
}

// UpdateCurrencyRequest defines a partial currency update. Nil fields are left unchanged.
type UpdateCurrencyRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Symbol       *string          `json:"symbol" binding:"omitempty,min=1,max=10"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate" binding:"omitempty,gte=0,lte=999999.9999"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	ExchangeRate string `json:"exchange_rate"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:           curr.CurrencyID,
		Name:         curr.Name,
		Symbol:       curr.Symbol,
		ExchangeRate: curr.ExchangeRate.StringFixed(domain.ExchangeRatePlaces),
		CreatedAt:    curr.CreatedAt.Format(timestampLayout),
		UpdatedAt:    curr.UpdatedAt.Format(timestampLayout),
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// toOptionalCurrencyResponse returns nil when the currency was not loaded.
func toOptionalCurrencyResponse(curr *domain.Currency) *CurrencyResponse {
	if curr == nil {
		return nil
	}
	resp := ToCurrencyResponse(curr)
	return &resp
}
