package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/localecart/catalog_backend/internal/core/ports/services"
	"github.com/localecart/catalog_backend/internal/dto"
	"github.com/localecart/catalog_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := &currencyHandler{currencyService: currencyService}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/convert", h.convertPrice)
		currencies.GET("/current", h.getCurrentCurrency)
		currencies.PUT("/current", h.setCurrentCurrency)
	}
}

// listCurrencies godoc
// @Summary List all available currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListAvailableCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// convertPrice godoc
// @Summary Convert and format an amount between currencies
// @Produce json
// @Param amount query string true "Decimal amount"
// @Param from   query string true "Source currency code"
// @Param to     query string true "Target currency code"
// @Success 200 {object} dto.ConvertPriceResponse
// @Router /currencies/convert [get]
func (h *currencyHandler) convertPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}
	from := c.Query("from")
	to := c.Query("to")

	converted, err := h.currencyService.ConvertPrice(c.Request.Context(), amount, from, to)
	if err != nil {
		logger.Warn("Price conversion failed", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	formatted, err := h.currencyService.FormatPrice(c.Request.Context(), converted, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertPriceResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
		Formatted: formatted,
	})
}

// getCurrentCurrency godoc
// @Summary Get the active currency preference
// @Produce json
// @Success 200 {object} dto.ActiveCurrencyResponse
// @Router /currencies/current [get]
func (h *currencyHandler) getCurrentCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ActiveCurrencyResponse{Currency: h.currencyService.CurrentCurrency()})
}

// setCurrentCurrency godoc
// @Summary Set the active currency preference
// @Accept json
// @Produce json
// @Param request body dto.SetCurrencyRequest true "Currency selection"
// @Success 200 {object} dto.ActiveCurrencyResponse
// @Router /currencies/current [put]
func (h *currencyHandler) setCurrentCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind SetCurrencyRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	if err := h.currencyService.SetCurrentCurrency(c.Request.Context(), req.Currency); err != nil {
		logger.Error("Failed to set active currency", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActiveCurrencyResponse{Currency: h.currencyService.CurrentCurrency()})
}
