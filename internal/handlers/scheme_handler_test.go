package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimitra/internal/models"
	"agrimitra/internal/services"
)

func newSchemeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	schemes := NewSchemeHandler(services.NewSchemeService())

	r := gin.New()
	r.GET("/api/schemes/search", schemes.Search)
	r.GET("/api/schemes/categories", schemes.Categories)
	r.GET("/api/schemes/popular", schemes.Popular)
	r.GET("/api/schemes/scheme/:scheme_name", schemes.GetScheme)
	return r
}

func TestSchemeHandler_Search(t *testing.T) {
	r := newSchemeRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/schemes/search?query=insurance", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SchemeSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Schemes)
	assert.Len(t, resp.SearchSuggestions, 5)
}

func TestSchemeHandler_Search_MissingQuery(t *testing.T) {
	r := newSchemeRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/schemes/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchemeHandler_Categories(t *testing.T) {
	r := newSchemeRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/schemes/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Categories []models.SchemeCategory `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Categories, 4)
}

func TestSchemeHandler_Popular(t *testing.T) {
	r := newSchemeRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/schemes/popular", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		PopularSchemes []models.SchemePreview `json:"popular_schemes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.PopularSchemes, 3)
}

func TestSchemeHandler_GetScheme(t *testing.T) {
	r := newSchemeRouter()

	path := "/api/schemes/scheme/" + url.PathEscape("PM-KISAN Samman Nidhi")
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.GovernmentScheme
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PM-KISAN Samman Nidhi", resp.Name)
	assert.Equal(t, "subsidy", resp.Category)
}

func TestSchemeHandler_GetScheme_NotFound(t *testing.T) {
	r := newSchemeRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/schemes/scheme/unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
