package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/export"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/SscSPs/product_pricing_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

const productNotFound = "Product not found"

// productHandler handles HTTP requests related to products and their prices.
type productHandler struct {
	productService      portssvc.ProductSvcFacade
	productPriceService portssvc.ProductPriceSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade, pps portssvc.ProductPriceSvcFacade) *productHandler {
	return &productHandler{
		productService:      ps,
		productPriceService: pps,
	}
}

// registerProductRoutes registers product routes, the nested price routes and the price export.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade, productPriceService portssvc.ProductPriceSvcFacade) {
	h := newProductHandler(productService, productPriceService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		// static segments take precedence over :id
		products.GET("/search", h.searchProducts)
		products.GET("/export", h.exportProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.PATCH("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)

		products.GET("/:id/prices", h.listProductPrices)
		products.POST("/:id/prices", h.deriveProductPrice)
	}

	rg.GET("/product-prices/export", h.exportProductPrices)
}

// listProducts godoc
// @Summary List all products
// @Description Retrieves every product with its base currency, ordered by name
// @Tags products
// @Produce  json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProductResponse}
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list products")
		return
	}
	respondSuccess(c, http.StatusOK, "Products retrieved successfully", dto.ToListProductResponse(products))
}

// searchProducts godoc
// @Summary Search products
// @Description Filters products by name, currency symbol and price/cost ranges, sorted and paginated
// @Tags products
// @Produce  json
// @Param name query string false "Substring of the name (case-insensitive)"
// @Param currency_symbol query string false "Base currency symbol"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param min_tax_cost query number false "Minimum tax cost"
// @Param max_tax_cost query number false "Maximum tax cost"
// @Param min_manufacturing_cost query number false "Minimum manufacturing cost"
// @Param max_manufacturing_cost query number false "Maximum manufacturing cost"
// @Param sort_by query string false "Sort column" Enums(name, price, tax_cost, manufacturing_cost, created_at, updated_at)
// @Param sort_order query string false "Sort direction" Enums(asc, desc)
// @Param per_page query int false "Page size (1-100)"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.ProductSearchResponse}
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/search [get]
func (h *productHandler) searchProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.SearchProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	criteria, err := params.ToCriteria()
	if err != nil {
		respondError(c, err, "Invalid search parameters")
		return
	}

	page, err := h.productService.SearchProducts(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err, "Failed to search products")
		return
	}

	logger.Info("Products searched", slog.Int("total", page.Total), slog.Int("page", page.Page))
	respondSuccess(c, http.StatusOK, "Products found successfully", dto.ProductSearchResponse{
		Data: dto.ToListProductResponse(page.Products),
		PageMeta: dto.PageMeta{
			CurrentPage: page.Page,
			PerPage:     page.PerPage,
			Total:       page.Total,
			LastPage:    pagination.LastPage(page.Total, page.PerPage),
		},
	})
}

// createProduct godoc
// @Summary Create a product
// @Description Stores the product with its base-currency price. With create_product_prices=true a converted price is also stored for every other currency.
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.APIResponse{data=dto.ProductResponse}
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	logger.Info("Product created successfully", slog.Int64("product_id", product.ProductID))
	respondSuccess(c, http.StatusCreated, "Product created successfully", dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce  json
// @Param   id path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProductResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	productID, ok := pathID(c, "id", productNotFound)
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}
	respondSuccess(c, http.StatusOK, "Product retrieved successfully", dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Partially updates a product. Existing converted prices are not recalculated.
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path int true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.ProductResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	productID, ok := pathID(c, "id", productNotFound)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, req, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}

	logger.Info("Product updated successfully", slog.Int64("product_id", productID))
	respondSuccess(c, http.StatusOK, "Product updated successfully", dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Deletes the product and all of its prices
// @Tags products
// @Produce  json
// @Param   id path int true "Product ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	productID, ok := pathID(c, "id", productNotFound)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), productID, requestMeta(c)); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	logger.Info("Product deleted successfully", slog.Int64("product_id", productID))
	respondSuccess(c, http.StatusOK, "Product deleted successfully", nil)
}

// exportProducts godoc
// @Summary Export products
// @Description Downloads every product as an xlsx workbook
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Security BearerAuth
// @Router /products/export [get]
func (h *productHandler) exportProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to export products")
		return
	}

	wb, err := export.Products(products)
	if err != nil {
		respondError(c, err, "Failed to export products")
		return
	}
	sendWorkbook(c, wb, "products_"+time.Now().Format(exportTimestampLayout)+".xlsx")
}

// listProductPrices godoc
// @Summary List a product's prices
// @Description Retrieves the product's price in every currency it has one for, newest first
// @Tags product-prices
// @Produce  json
// @Param   id path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ProductPriceResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{id}/prices [get]
func (h *productHandler) listProductPrices(c *gin.Context) {
	productID, ok := pathID(c, "id", productNotFound)
	if !ok {
		return
	}

	prices, err := h.productPriceService.ListProductPrices(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err, "Failed to list product prices")
		return
	}
	respondSuccess(c, http.StatusOK, "Product prices retrieved successfully", dto.ToListProductPriceResponse(prices))
}

// deriveProductPrice godoc
// @Summary Derive a product price in another currency
// @Description Converts the product's base price with the target currency's exchange rate, rounds it to two places and stores it. An existing price for the pair is overwritten.
// @Tags product-prices
// @Accept  json
// @Produce  json
// @Param   id path int true "Product ID"
// @Param   price body dto.CreateProductPriceRequest true "Target currency"
// @Success 201 {object} dto.APIResponse{data=dto.ProductPriceResponse} "Created"
// @Success 200 {object} dto.APIResponse{data=dto.ProductPriceResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Unknown currency or the product's base currency"
// @Security BearerAuth
// @Router /products/{id}/prices [post]
func (h *productHandler) deriveProductPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	productID, ok := pathID(c, "id", productNotFound)
	if !ok {
		return
	}

	var req dto.CreateProductPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	derived, err := h.productPriceService.DerivePrice(c.Request.Context(), productID, req.CurrencyID, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to derive product price")
		return
	}

	logger.Info("Product price derived",
		slog.Int64("product_id", productID),
		slog.Int64("currency_id", req.CurrencyID),
		slog.Bool("created", derived.Created))

	resp := dto.ToProductPriceResponse(&derived.Price)
	if derived.Created {
		respondSuccess(c, http.StatusCreated, "Product price created successfully", resp)
		return
	}
	respondSuccess(c, http.StatusOK, "Product price updated successfully", resp)
}

// exportProductPrices godoc
// @Summary Export product prices
// @Description Downloads every product price with product and currency names as an xlsx workbook
// @Tags product-prices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Security BearerAuth
// @Router /product-prices/export [get]
func (h *productHandler) exportProductPrices(c *gin.Context) {
	rows, err := h.productPriceService.ListPricesForExport(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to export product prices")
		return
	}

	wb, err := export.ProductPrices(rows)
	if err != nil {
		respondError(c, err, "Failed to export product prices")
		return
	}
	sendWorkbook(c, wb, "product_prices_"+time.Now().Format(exportTimestampLayout)+".xlsx")
}
