package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/localecart/catalog_backend/internal/core/ports/services"
	"github.com/localecart/catalog_backend/internal/dto"
	"github.com/localecart/catalog_backend/internal/middleware"
)

// languageHandler handles HTTP requests related to languages.
type languageHandler struct {
	localization portssvc.LocalizationSvcFacade
}

// registerLanguageRoutes registers routes related to languages.
func registerLanguageRoutes(rg *gin.RouterGroup, localization portssvc.LocalizationSvcFacade) {
	h := &languageHandler{localization: localization}

	languages := rg.Group("/languages")
	{
		languages.GET("", h.listLanguages)
		languages.GET("/current", h.getCurrentLanguage)
		languages.PUT("/current", h.setCurrentLanguage)
	}
}

// listLanguages godoc
// @Summary List supported languages
// @Produce json
// @Success 200 {array} dto.LanguageResponse
// @Router /languages [get]
func (h *languageHandler) listLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListLanguageResponse(h.localization.AvailableLanguages()))
}

// getCurrentLanguage godoc
// @Summary Get the active language preference
// @Produce json
// @Success 200 {object} dto.ActiveLanguageResponse
// @Router /languages/current [get]
func (h *languageHandler) getCurrentLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ActiveLanguageResponse{Language: h.localization.CurrentLanguage()})
}

// setCurrentLanguage godoc
// @Summary Set the active language preference
// @Accept json
// @Produce json
// @Param request body dto.SetLanguageRequest true "Language selection"
// @Success 200 {object} dto.ActiveLanguageResponse
// @Router /languages/current [put]
func (h *languageHandler) setCurrentLanguage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind SetLanguageRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	if err := h.localization.SetLanguage(c.Request.Context(), req.Language); err != nil {
		logger.Warn("Failed to set active language", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActiveLanguageResponse{Language: h.localization.CurrentLanguage()})
}
