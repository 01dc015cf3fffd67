package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimitra/internal/services"
)

// SchemeHandler serves the government-scheme endpoints.
type SchemeHandler struct {
	schemes *services.SchemeService
}

// NewSchemeHandler creates the scheme handler.
func NewSchemeHandler(schemes *services.SchemeService) *SchemeHandler {
	return &SchemeHandler{schemes: schemes}
}

// Search handles GET /api/schemes/search.
func (h *SchemeHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	state := c.DefaultQuery("state", "Karnataka")
	category := c.Query("category")
	c.JSON(http.StatusOK, h.schemes.Search(query, state, category))
}

// Categories handles GET /api/schemes/categories.
func (h *SchemeHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.schemes.Categories()})
}

// Popular handles GET /api/schemes/popular.
func (h *SchemeHandler) Popular(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"popular_schemes": h.schemes.Popular()})
}

// GetScheme handles GET /api/schemes/scheme/:scheme_name.
func (h *SchemeHandler) GetScheme(c *gin.Context) {
	scheme, err := h.schemes.GetByName(c.Param("scheme_name"))
	if err != nil {
		if errors.Is(err, services.ErrSchemeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scheme not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get scheme details"})
		return
	}
	c.JSON(http.StatusOK, scheme)
}
