package models

import "github.com/shopspring/decimal"

// Currency represents a row of the currencies table.
type Currency struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	Symbol       string          `db:"symbol"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"` // numeric(10,4)
	Timestamps
}
