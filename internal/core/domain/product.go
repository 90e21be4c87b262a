package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the fixed-point scale for prices and costs.
const MoneyPlaces = 2

// Product is a sellable item whose canonical price is denominated in its base currency.
type Product struct {
	ProductID         int64           `json:"productID"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	CurrencyID        int64           `json:"currencyID"` // Base currency
	TaxCost           decimal.Decimal `json:"taxCost"`
	ManufacturingCost decimal.Decimal `json:"manufacturingCost"`
	Timestamps

	// Currency is populated by reads that join the base currency.
	Currency *Currency `json:"currency,omitempty"`
}

// ProductSortField enumerates the columns product search can order by.
type ProductSortField string

const (
	ProductSortName              ProductSortField = "name"
	ProductSortPrice             ProductSortField = "price"
	ProductSortTaxCost           ProductSortField = "tax_cost"
	ProductSortManufacturingCost ProductSortField = "manufacturing_cost"
	ProductSortCreatedAt         ProductSortField = "created_at"
	ProductSortUpdatedAt         ProductSortField = "updated_at"
)

// Valid reports whether f is one of the known sort fields.
func (f ProductSortField) Valid() bool {
	switch f {
	case ProductSortName, ProductSortPrice, ProductSortTaxCost,
		ProductSortManufacturingCost, ProductSortCreatedAt, ProductSortUpdatedAt:
		return true
	}
	return false
}

// SortOrder is an ascending or descending ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether o is asc or desc.
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// ProductSearchCriteria filters and orders a product search. Nil bounds are ignored.
type ProductSearchCriteria struct {
	Name                 string
	CurrencySymbol       string
	MinPrice             *decimal.Decimal
	MaxPrice             *decimal.Decimal
	MinTaxCost           *decimal.Decimal
	MaxTaxCost           *decimal.Decimal
	MinManufacturingCost *decimal.Decimal
	MaxManufacturingCost *decimal.Decimal
	SortBy               ProductSortField
	SortOrder            SortOrder
	Page                 int
	PerPage              int
}

// ProductPage is one page of a product search.
type ProductPage struct {
	Products []Product
	Total    int
	Page     int
	PerPage  int
}
