package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/localecart/catalog_backend/internal/apperrors"
	portssvc "github.com/localecart/catalog_backend/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facade interfaces.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerCurrencyRoutes(v1, services.Currency)
	registerProductRoutes(v1, services.Product, services.Localization)
	registerCategoryRoutes(v1, services.Category)
	registerLanguageRoutes(v1, services.Localization)
}

// respondServiceError maps service-layer errors onto HTTP statuses. The
// silent fallback policies never reach here; only explicit error
// conditions do.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog data unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bindingErrorMessage flattens gin binding failures into a readable
// message, expanding field-level validator errors when present.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		msg := "invalid request:"
		for i, fe := range verrs {
			if i > 0 {
				msg += ";"
			}
			msg += " field " + fe.Field() + " failed on " + fe.Tag()
		}
		return msg
	}
	return "invalid request format: " + err.Error()
}
