package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/tracker/internal/domain"
)

// CatalogHandler serves the static exercise-template catalog.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListTemplates handles GET /exercises: the full catalog, declaration
// order, every time.
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ExerciseCatalog())
}
