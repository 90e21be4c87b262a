package dto

import (
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name              string           `json:"name" binding:"required,max=255"`
	Description       string           `json:"description" binding:"required"`
	Price             *decimal.Decimal `json:"price" binding:"required,gte=0,lte=9999999999.99"`
	CurrencyID        int64            `json:"currency_id" binding:"required,gt=0"`
	TaxCost           *decimal.Decimal `json:"tax_cost" binding:"omitempty,gte=0,lte=9999999999.99"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost" binding:"omitempty,gte=0,lte=9999999999.99"`
	// CreateProductPrices also seeds a converted price for every other currency.
	CreateProductPrices *bool `json:"create_product_prices"`
}

// SeedAllCurrencies reports whether the caller asked for prices in every currency.
func (r CreateProductRequest) SeedAllCurrencies() bool {
	return r.CreateProductPrices != nil && *r.CreateProductPrices
}

// UpdateProductRequest defines a partial product update. Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description       *string          `json:"description" binding:"omitempty,min=1"`
	Price             *decimal.Decimal `json:"price" binding:"omitempty,gte=0,lte=9999999999.99"`
	CurrencyID        *int64           `json:"currency_id" binding:"omitempty,gt=0"`
	TaxCost           *decimal.Decimal `json:"tax_cost" binding:"omitempty,gte=0,lte=9999999999.99"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost" binding:"omitempty,gte=0,lte=9999999999.99"`
}

// SearchProductsParams are the query parameters accepted by product search.
type SearchProductsParams struct {
	Name                 string `form:"name" binding:"omitempty,max=255"`
	CurrencySymbol       string `form:"currency_symbol"`
	MinPrice             string `form:"min_price" binding:"omitempty,numeric"`
	MaxPrice             string `form:"max_price" binding:"omitempty,numeric"`
	MinTaxCost           string `form:"min_tax_cost" binding:"omitempty,numeric"`
	MaxTaxCost           string `form:"max_tax_cost" binding:"omitempty,numeric"`
	MinManufacturingCost string `form:"min_manufacturing_cost" binding:"omitempty,numeric"`
	MaxManufacturingCost string `form:"max_manufacturing_cost" binding:"omitempty,numeric"`
	SortBy               string `form:"sort_by" binding:"omitempty,oneof=name price tax_cost manufacturing_cost created_at updated_at"`
	SortOrder            string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	PerPage              int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Page                 int    `form:"page" binding:"omitempty,min=1"`
}

// ToCriteria parses the numeric bounds and checks that each max is not below its min.
func (p SearchProductsParams) ToCriteria() (domain.ProductSearchCriteria, error) {
	criteria := domain.ProductSearchCriteria{
		Name:           strings.TrimSpace(p.Name),
		CurrencySymbol: p.CurrencySymbol,
		SortBy:         domain.ProductSortField(p.SortBy),
		SortOrder:      domain.SortOrder(p.SortOrder),
		Page:           p.Page,
		PerPage:        p.PerPage,
	}

	bounds := []struct {
		minField, maxField string
		minRaw, maxRaw     string
		minDst, maxDst     **decimal.Decimal
	}{
		{"min_price", "max_price", p.MinPrice, p.MaxPrice, &criteria.MinPrice, &criteria.MaxPrice},
		{"min_tax_cost", "max_tax_cost", p.MinTaxCost, p.MaxTaxCost, &criteria.MinTaxCost, &criteria.MaxTaxCost},
		{"min_manufacturing_cost", "max_manufacturing_cost", p.MinManufacturingCost, p.MaxManufacturingCost, &criteria.MinManufacturingCost, &criteria.MaxManufacturingCost},
	}
	for _, b := range bounds {
		minVal, err := parseNonNegative(b.minField, b.minRaw)
		if err != nil {
			return domain.ProductSearchCriteria{}, err
		}
		maxVal, err := parseNonNegative(b.maxField, b.maxRaw)
		if err != nil {
			return domain.ProductSearchCriteria{}, err
		}
		if minVal != nil && maxVal != nil && maxVal.LessThan(*minVal) {
			return domain.ProductSearchCriteria{}, apperrors.NewFieldValidationError(b.maxField,
				"The "+b.maxField+" must be greater than or equal to the "+b.minField+".")
		}
		*b.minDst, *b.maxDst = minVal, maxVal
	}
	return criteria, nil
}

func parseNonNegative(field, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperrors.NewFieldValidationError(field, "The "+field+" must be a number.")
	}
	if d.IsNegative() {
		return nil, apperrors.NewFieldValidationError(field, "The "+field+" must be greater than or equal to 0.")
	}
	return &d, nil
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Price             float64           `json:"price"`
	Currency          *CurrencyResponse `json:"currency,omitempty"`
	CurrencyID        int64             `json:"currency_id"`
	TaxCost           float64           `json:"tax_cost"`
	ManufacturingCost float64           `json:"manufacturing_cost"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ProductID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price.InexactFloat64(),
		Currency:          toOptionalCurrencyResponse(p.Currency),
		CurrencyID:        p.CurrencyID,
		TaxCost:           p.TaxCost.InexactFloat64(),
		ManufacturingCost: p.ManufacturingCost.InexactFloat64(),
		CreatedAt:         p.CreatedAt.Format(timestampLayout),
		UpdatedAt:         p.UpdatedAt.Format(timestampLayout),
	}
}

// ToListProductResponse converts a slice of domain.Product
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ProductSearchResponse is one page of search results.
type ProductSearchResponse struct {
	Data []ProductResponse `json:"data"`
	PageMeta
}
