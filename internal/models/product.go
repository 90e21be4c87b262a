package models

import "github.com/shopspring/decimal"

// Product represents a row of the products table.
type Product struct {
	ID                int64           `db:"id"`
	Name              string          `db:"name"`
	Description       string          `db:"description"`
	Price             decimal.Decimal `db:"price"`
	CurrencyID        int64           `db:"currency_id"`
	TaxCost           decimal.Decimal `db:"tax_cost"`
	ManufacturingCost decimal.Decimal `db:"manufacturing_cost"`
	Timestamps
}

// ProductPrice represents a row of the product_prices table.
type ProductPrice struct {
	ID         int64           `db:"id"`
	ProductID  int64           `db:"product_id"`
	CurrencyID int64           `db:"currency_id"`
	Price      decimal.Decimal `db:"price"`
	Timestamps
}
