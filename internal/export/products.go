package export

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// ProductsSheet is the sheet name of the products workbook.
const ProductsSheet = "Products"

var productHeaders = []string{
	"ID", "Name", "Description", "Price", "Currency", "Currency Symbol",
	"Tax Cost", "Manufacturing Cost", "Created At", "Updated At",
}

// Products renders products with their base currency.
func Products(products []domain.Product) (*Workbook, error) {
	wb, err := newWorkbook(ProductsSheet, productHeaders, []float64{8, 30, 40, 12, 20, 16, 12, 20, 20, 20})
	if err != nil {
		return nil, err
	}

	for i, p := range products {
		currencyName, currencySymbol := "", ""
		if p.Currency != nil {
			currencyName, currencySymbol = p.Currency.Name, p.Currency.Symbol
		}
		row := []any{
			p.ProductID,
			p.Name,
			p.Description,
			p.Price.InexactFloat64(),
			currencyName,
			currencySymbol,
			p.TaxCost.InexactFloat64(),
			p.ManufacturingCost.InexactFloat64(),
			p.CreatedAt.Format(cellTimeLayout),
			p.UpdatedAt.Format(cellTimeLayout),
		}
		if err := wb.appendRow(i+1, row); err != nil {
			_ = wb.Close()
			return nil, err
		}
	}
	return wb, nil
}

// ProductPricesSheet is the sheet name of the product prices workbook.
const ProductPricesSheet = "Product Prices"

// ProductPrices renders the flattened product/currency/price rows.
func ProductPrices(rows []domain.ProductPriceExportRow) (*Workbook, error) {
	wb, err := newWorkbook(ProductPricesSheet, []string{"Product Name", "Currency Name", "Price"}, []float64{30, 20, 14})
	if err != nil {
		return nil, err
	}

	for i, r := range rows {
		if err := wb.appendRow(i+1, []any{r.ProductName, r.CurrencyName, r.Price.InexactFloat64()}); err != nil {
			_ = wb.Close()
			return nil, err
		}
	}
	return wb, nil
}
