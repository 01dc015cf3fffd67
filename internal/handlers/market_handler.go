package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agrimitra/internal/models"
	"agrimitra/internal/services"
)

// MarketHandler serves the market data endpoints.
type MarketHandler struct {
	market *services.MarketService
}

// NewMarketHandler creates the market handler.
func NewMarketHandler(market *services.MarketService) *MarketHandler {
	return &MarketHandler{market: market}
}

// GetPrice handles GET /api/market/price/:crop_name.
func (h *MarketHandler) GetPrice(c *gin.Context) {
	cropName := c.Param("crop_name")
	location := c.DefaultQuery("location", "Karnataka")
	c.JSON(http.StatusOK, h.market.GetCurrentPrice(cropName, location))
}

// GetTrends handles GET /api/market/trends/:crop_name.
func (h *MarketHandler) GetTrends(c *gin.Context) {
	cropName := c.Param("crop_name")
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}
	c.JSON(http.StatusOK, h.market.GetMarketTrends(cropName, days))
}

// PopularCrops handles GET /api/market/popular-crops.
func (h *MarketHandler) PopularCrops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"popular_crops": h.market.PopularCrops()})
}

// AnalyzeSellingDecision handles POST /api/market/analyze-selling-decision.
func (h *MarketHandler) AnalyzeSellingDecision(c *gin.Context) {
	var req models.MarketPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.market.AnalyzeSellingDecision(req))
}
