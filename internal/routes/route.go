// Package routes wires handlers onto the gin engine.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimitra/internal/handlers"
)

// Register registers every route of the API.
func Register(
	r *gin.Engine,
	chat *handlers.ChatHandler,
	speech *handlers.SpeechHandler,
	market *handlers.MarketHandler,
	schemes *handlers.SchemeHandler,
	liveChat *handlers.LiveChatHandler,
) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AgriMitra API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "AgriMitra Backend"})
	})

	chatGroup := r.Group("/api/chat")
	{
		chatGroup.POST("/message", chat.Message)
		chatGroup.POST("/analyze-image", chat.AnalyzeImage)
		chatGroup.POST("/upload-image", chat.UploadImage)
	}

	speechGroup := r.Group("/api/speech")
	{
		speechGroup.POST("/speech-to-text", speech.SpeechToText)
		speechGroup.POST("/text-to-speech", speech.TextToSpeech)
		speechGroup.GET("/supported-languages", speech.SupportedLanguages)
	}

	marketGroup := r.Group("/api/market")
	{
		marketGroup.GET("/price/:crop_name", market.GetPrice)
		marketGroup.GET("/trends/:crop_name", market.GetTrends)
		marketGroup.GET("/popular-crops", market.PopularCrops)
		marketGroup.POST("/analyze-selling-decision", market.AnalyzeSellingDecision)
	}

	schemeGroup := r.Group("/api/schemes")
	{
		schemeGroup.GET("/search", schemes.Search)
		schemeGroup.GET("/categories", schemes.Categories)
		schemeGroup.GET("/popular", schemes.Popular)
		schemeGroup.GET("/scheme/:scheme_name", schemes.GetScheme)
	}

	r.GET("/ws/chat", liveChat.Handle)
}
