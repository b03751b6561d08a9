package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/localecart/catalog_backend/internal/core/ports/services"
	"github.com/localecart/catalog_backend/internal/dto"
	"github.com/localecart/catalog_backend/internal/middleware"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	rg.GET("/categories", h.listCategories)
}

// listCategories godoc
// @Summary List category ids with labels resolved for a language
// @Produce json
// @Param lang query string false "Language tag"
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lang := c.Query("lang")

	ids, err := h.categoryService.GetAllCategoryIDs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	labels, err := h.categoryService.GetAllCategoryTranslations(c.Request.Context(), lang)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]dto.CategoryResponse, len(ids))
	for i, id := range ids {
		responses[i] = dto.CategoryResponse{ID: id, Label: labels[id]}
	}

	c.JSON(http.StatusOK, responses)
}
