package services

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"agrimitra/internal/models"
)

// cropQuote is one entry of the static price table.
type cropQuote struct {
	price           float64
	unit            string
	trend           string
	trendPercentage float64
	market          string
}

// mockPrices is the development stand-in for a real market data feed,
// covering common Karnataka crops.
var mockPrices = map[string]cropQuote{
	"tomato":    {price: 25.50, unit: "per kg", trend: "increasing", trendPercentage: 12.5, market: "Bangalore APMC"},
	"onion":     {price: 18.75, unit: "per kg", trend: "stable", trendPercentage: 2.1, market: "Mysore Mandi"},
	"potato":    {price: 22.00, unit: "per kg", trend: "decreasing", trendPercentage: -5.3, market: "Hassan Market"},
	"rice":      {price: 45.00, unit: "per kg", trend: "stable", trendPercentage: 1.2, market: "Shimoga APMC"},
	"sugarcane": {price: 2800.00, unit: "per ton", trend: "increasing", trendPercentage: 8.7, market: "Mandya Sugar Factory"},
}

// popularCrops drives the popular-crops listing, in display order.
var popularCrops = []string{"tomato", "onion", "potato", "rice", "sugarcane"}

// maxTrendDays bounds the generated historical series.
const maxTrendDays = 365

// MarketService serves mock market data. Prices for unknown crops are
// randomized per call; known crops are stable. Random values come from the
// top-level math/rand source, which is safe for concurrent handlers.
type MarketService struct{}

// NewMarketService creates a market service.
func NewMarketService() *MarketService {
	return &MarketService{}
}

// GetCurrentPrice returns today's quote for a crop. Unknown crops get a
// generated quote attributed to the local market of the given location.
func (s *MarketService) GetCurrentPrice(cropName, location string) models.MarketPriceResponse {
	if location == "" {
		location = "Karnataka"
	}
	today := time.Now().Format("2006-01-02")

	if quote, ok := mockPrices[strings.ToLower(cropName)]; ok {
		pct := quote.trendPercentage
		return models.MarketPriceResponse{
			CropName:        cropName,
			CurrentPrice:    quote.price,
			PriceUnit:       quote.unit,
			MarketName:      quote.market,
			PriceDate:       today,
			Trend:           quote.trend,
			TrendPercentage: &pct,
			Recommendations: trendRecommendations(quote.trend),
		}
	}

	trends := []string{"increasing", "decreasing", "stable"}
	pct := round1(rand.Float64()*25 - 10)
	return models.MarketPriceResponse{
		CropName:        cropName,
		CurrentPrice:    round2(15 + rand.Float64()*35),
		PriceUnit:       "per kg",
		MarketName:      fmt.Sprintf("%s Local Market", location),
		PriceDate:       today,
		Trend:           trends[rand.Intn(len(trends))],
		TrendPercentage: &pct,
		Recommendations: []string{
			"Monitor price trends for next few days",
			"Consider nearby markets for better rates",
			"Check quality requirements before selling",
		},
	}
}

// trendRecommendations maps a price trend to selling advice.
func trendRecommendations(trend string) []string {
	switch trend {
	case "increasing":
		return []string{
			"Good time to sell - prices are rising",
			"Consider holding for 2-3 days if possible",
			"Ensure proper storage to maintain quality",
		}
	case "decreasing":
		return []string{
			"Consider selling immediately",
			"Avoid holding stock for too long",
			"Look for alternative markets with better rates",
		}
	default:
		return []string{
			"Prices are stable - good time to sell",
			"Focus on quality to get better rates",
			"Compare prices across different markets",
		}
	}
}

// GetMarketTrends generates a historical series and a short forecast around
// the crop's base price.
func (s *MarketService) GetMarketTrends(cropName string, days int) models.MarketTrendResponse {
	if days <= 0 {
		days = 7
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}

	basePrice := 25.0
	if quote, ok := mockPrices[strings.ToLower(cropName)]; ok {
		basePrice = quote.price
	}

	historical := make([]models.PricePoint, 0, days)
	var sum float64
	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, -(days - i)).Format("2006-01-02")
		price := round2(basePrice + rand.Float64()*6 - 3)
		sum += price
		historical = append(historical, models.PricePoint{Date: date, Price: price, Market: "Local APMC"})
	}

	forecast := make([]models.ForecastPoint, 0, 3)
	for i := 1; i <= 3; i++ {
		date := time.Now().AddDate(0, 0, i).Format("2006-01-02")
		forecast = append(forecast, models.ForecastPoint{
			Date:           date,
			PredictedPrice: round2(basePrice + rand.Float64()*6 - 2),
			Confidence:     0.7 + rand.Float64()*0.25,
		})
	}

	return models.MarketTrendResponse{
		CropName:         cropName,
		HistoricalPrices: historical,
		Forecast:         forecast,
		BestSellingTime:  "Within next 2-3 days",
		MarketInsights: []string{
			fmt.Sprintf("Average price over %d days: ₹%.2f", days, sum/float64(days)),
			"Demand is seasonal - festival season shows higher prices",
			"Transportation costs affect final margins",
			"Quality grading significantly impacts price",
		},
	}
}

// PopularCrops lists the tracked crops with their current quotes.
func (s *MarketService) PopularCrops() []models.CropSummary {
	crops := make([]models.CropSummary, 0, len(popularCrops))
	for _, crop := range popularCrops {
		price := s.GetCurrentPrice(crop, "")
		crops = append(crops, models.CropSummary{
			Name:  titleWord(crop),
			Price: price.CurrentPrice,
			Unit:  price.PriceUnit,
			Trend: price.Trend,
		})
	}
	return crops
}

// AnalyzeSellingDecision gives a sell/hold call from the current trend.
// Rising prices above five percent favor holding; falling prices favor an
// immediate sale.
func (s *MarketService) AnalyzeSellingDecision(req models.MarketPriceRequest) models.SellingDecision {
	price := s.GetCurrentPrice(req.CropName, req.Location)

	decision := "sell"
	var reasons []string
	pct := 0.0
	if price.TrendPercentage != nil {
		pct = *price.TrendPercentage
	}

	switch {
	case price.Trend == "increasing" && pct > 5:
		decision = "hold"
		reasons = append(reasons, "Prices are rising significantly")
	case price.Trend == "decreasing" && pct < -3:
		reasons = append(reasons, "Prices are falling, sell to avoid losses")
	default:
		reasons = append(reasons, "Stable prices, good time to sell")
	}

	return models.SellingDecision{
		CropName:        req.CropName,
		Decision:        decision,
		Confidence:      0.7,
		CurrentPrice:    price.CurrentPrice,
		Reasons:         reasons,
		Recommendations: price.Recommendations,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
