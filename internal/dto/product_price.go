package dto

import "github.com/SscSPs/product_pricing_app/internal/core/domain"

// CreateProductPriceRequest asks for the product's price in another currency.
type CreateProductPriceRequest struct {
	CurrencyID int64 `json:"currency_id" binding:"required,gt=0"`
}

// ProductPriceResponse defines the data returned for a product price.
type ProductPriceResponse struct {
	ID         int64             `json:"id"`
	ProductID  int64             `json:"product_id"`
	Currency   *CurrencyResponse `json:"currency,omitempty"`
	CurrencyID int64             `json:"currency_id"`
	Price      float64           `json:"price"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

// ToProductPriceResponse converts a domain.ProductPrice to its DTO.
func ToProductPriceResponse(p *domain.ProductPrice) ProductPriceResponse {
	return ProductPriceResponse{
		ID:         p.ProductPriceID,
		ProductID:  p.ProductID,
		Currency:   toOptionalCurrencyResponse(p.Currency),
		CurrencyID: p.CurrencyID,
		Price:      p.Price.InexactFloat64(),
		CreatedAt:  p.CreatedAt.Format(timestampLayout),
		UpdatedAt:  p.UpdatedAt.Format(timestampLayout),
	}
}

// ToListProductPriceResponse converts a slice of domain.ProductPrice.
func ToListProductPriceResponse(prices []domain.ProductPrice) []ProductPriceResponse {
	res := make([]ProductPriceResponse, len(prices))
	for i := range prices {
		res[i] = ToProductPriceResponse(&prices[i])
	}
	return res
}
