package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const currencyNotFound = "Currency not found"

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("", h.createCurrency)
		currencies.GET("/:id", h.getCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.PATCH("/:id", h.updateCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every currency ordered by name
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.APIResponse{data=[]dto.CurrencyResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	respondSuccess(c, http.StatusOK, "Currencies retrieved successfully", dto.ToListCurrencyResponse(currencies))
}

// createCurrency godoc
// @Summary Create a new currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.APIResponse{data=dto.CurrencyResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Validation failed or name/symbol taken"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to create currency")
		return
	}

	logger.Info("Currency created successfully", slog.Int64("currency_id", created.CurrencyID))
	respondSuccess(c, http.StatusCreated, "Currency created successfully", dto.ToCurrencyResponse(created))
}

// getCurrency godoc
// @Summary Get a currency by ID
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.APIResponse{data=dto.CurrencyResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currencyID, ok := pathID(c, "id", currencyNotFound)
	if !ok {
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		respondError(c, err, "Failed to retrieve currency")
		return
	}

	respondSuccess(c, http.StatusOK, "Currency retrieved successfully", dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Partially updates a currency. Omitted fields keep their value.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.CurrencyResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	currencyID, ok := pathID(c, "id", currencyNotFound)
	if !ok {
		return
	}

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyID, req, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to update currency")
		return
	}

	logger.Info("Currency updated successfully", slog.Int64("currency_id", currencyID))
	respondSuccess(c, http.StatusOK, "Currency updated successfully", dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Fails with 409 while any product uses the currency as its base
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	currencyID, ok := pathID(c, "id", currencyNotFound)
	if !ok {
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyID, requestMeta(c)); err != nil {
		respondError(c, err, "Failed to delete currency")
		return
	}

	logger.Info("Currency deleted successfully", slog.Int64("currency_id", currencyID))
	respondSuccess(c, http.StatusOK, "Currency deleted successfully", nil)
}
