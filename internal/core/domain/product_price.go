package domain

import "github.com/shopspring/decimal"

// ProductPrice is a product's price expressed in a specific currency.
// There is at most one per (ProductID, CurrencyID).
type ProductPrice struct {
	ProductPriceID int64           `json:"productPriceID"`
	ProductID      int64           `json:"productID"`
	CurrencyID     int64           `json:"currencyID"`
	Price          decimal.Decimal `json:"price"`
	Timestamps

	Currency *Currency `json:"currency,omitempty"`
}

// ConvertPrice returns the unrounded product of base price and exchange rate.
func ConvertPrice(basePrice, exchangeRate decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(exchangeRate)
}

// RoundMoney rounds to MoneyPlaces using decimal's half-away-from-zero rounding.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// DerivedPrice is the result of deriving a product's price in a target currency.
type DerivedPrice struct {
	Price ProductPrice
	// Created is true when the row was inserted, false when an existing row was overwritten.
	Created bool

	CalculatedPrice decimal.Decimal // unrounded base_price * exchange_rate
	BasePrice       decimal.Decimal
	ExchangeRate    decimal.Decimal
}

// ProductPriceExportRow is a flattened price joined with its product and currency names.
type ProductPriceExportRow struct {
	ProductName  string
	CurrencyName string
	Price        decimal.Decimal
}
