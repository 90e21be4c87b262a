package domain

import "github.com/shopspring/decimal"

// ExchangeRatePlaces is the fixed-point scale exchange rates are stored with.
const ExchangeRatePlaces = 4

// Currency represents a supported currency in the domain.
// ExchangeRate converts one unit of a product's base price into this currency:
// converted = base_price * ExchangeRate.
type Currency struct {
	CurrencyID   int64           `json:"currencyID"`
	Name         string          `json:"name"`   // e.g., "Euro"
	Symbol       string          `json:"symbol"` // e.g., "EUR"
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Timestamps
}
