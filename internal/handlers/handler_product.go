package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/localecart/catalog_backend/internal/core/domain"
	portssvc "github.com/localecart/catalog_backend/internal/core/ports/services"
	"github.com/localecart/catalog_backend/internal/dto"
	"github.com/localecart/catalog_backend/internal/middleware"
)

// productHandler handles HTTP requests related to the catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
	localization   portssvc.LocalizationSvcFacade
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade, localization portssvc.LocalizationSvcFacade) {
	h := &productHandler{productService: productService, localization: localization}

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
	}
}

// displayOptions resolves the language and currency a request wants the
// catalog rendered in, falling back to the active preferences.
func (h *productHandler) displayOptions(c *gin.Context) (lang, currency string) {
	lang = c.Query("lang")
	if lang == "" {
		lang = h.localization.CurrentLanguage()
	}
	currency = c.Query("currency")
	return lang, currency
}

func (h *productHandler) toResponse(c *gin.Context, p *domain.Product, lang, currency string) (dto.ProductResponse, error) {
	price, err := p.PriceInCurrency(c.Request.Context(), currency)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	formatted, err := p.FormattedPrice(c.Request.Context(), currency)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	label, err := p.LocalizedCategory(c.Request.Context(), lang)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.LocalizedName(lang),
		Unit:           p.LocalizedUnit(lang),
		Category:       p.Category,
		CategoryLabel:  label,
		Price:          price,
		Currency:       currency,
		FormattedPrice: formatted,
		StockQuantity:  p.StockQuantity,
	}, nil
}

// listProducts godoc
// @Summary List catalog products resolved for a language and currency
// @Produce json
// @Param lang     query string false "Language tag, defaults to the active language"
// @Param currency query string false "Currency code, defaults to each product's base currency"
// @Success 200 {array} dto.ProductResponse
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lang, currency := h.displayOptions(c)

	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		target := currency
		if target == "" {
			target = p.BaseCurrency
		}
		resp, err := h.toResponse(c, p, lang, target)
		if err != nil {
			logger.Error("Failed to resolve product", slog.String("product_id", p.ID), slog.String("error", err.Error()))
			respondServiceError(c, err)
			return
		}
		responses = append(responses, resp)
	}

	c.JSON(http.StatusOK, responses)
}

// getProduct godoc
// @Summary Get one catalog product resolved for a language and currency
// @Produce json
// @Param id       path  string true  "Product id"
// @Param lang     query string false "Language tag"
// @Param currency query string false "Currency code"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lang, currency := h.displayOptions(c)

	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Warn("Failed to get product", slog.String("product_id", c.Param("id")), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	if currency == "" {
		currency = product.BaseCurrency
	}
	resp, err := h.toResponse(c, product, lang, currency)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
