package models

// MarketPriceRequest is the payload for POST /api/market/analyze-selling-decision.
type MarketPriceRequest struct {
	CropName string `json:"crop_name" binding:"required"`
	Location string `json:"location"`
	Language string `json:"language"`
}

// MarketPriceResponse is the current price quote for a crop.
type MarketPriceResponse struct {
	CropName        string   `json:"crop_name"`
	CurrentPrice    float64  `json:"current_price"`
	PriceUnit       string   `json:"price_unit"`
	MarketName      string   `json:"market_name"`
	PriceDate       string   `json:"price_date"`
	Trend           string   `json:"trend"` // "increasing", "decreasing", "stable"
	TrendPercentage *float64 `json:"trend_percentage,omitempty"`
	Recommendations []string `json:"recommendations"`
}

// PricePoint is one historical observation in a trend series.
type PricePoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Market string  `json:"market"`
}

// ForecastPoint is one predicted price in a trend series.
type ForecastPoint struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"`
}

// MarketTrendResponse is the historical and forecast view for a crop.
type MarketTrendResponse struct {
	CropName         string          `json:"crop_name"`
	HistoricalPrices []PricePoint    `json:"historical_prices"`
	Forecast         []ForecastPoint `json:"forecast"`
	BestSellingTime  string          `json:"best_selling_time"`
	MarketInsights   []string        `json:"market_insights"`
}

// CropSummary is one entry in the popular-crops listing.
type CropSummary struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
	Trend string  `json:"trend"`
}

// SellingDecision is the result of the selling-decision analysis.
type SellingDecision struct {
	CropName        string   `json:"crop_name"`
	Decision        string   `json:"decision"` // "sell" or "hold"
	Confidence      float64  `json:"confidence"`
	CurrentPrice    float64  `json:"current_price"`
	Reasons         []string `json:"reasons"`
	Recommendations []string `json:"recommendations"`
}
