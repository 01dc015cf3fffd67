package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agrimitra/internal/clients/azurespeech"
	"agrimitra/internal/config"
	"agrimitra/internal/handlers"
	"agrimitra/internal/llm"
	"agrimitra/internal/logger"
	"agrimitra/internal/middleware"
	"agrimitra/internal/routes"
	"agrimitra/internal/services"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Logger depends on config, so this one failure goes to stderr raw.
		panic(err)
	}

	log := logger.New(cfg.Debug)
	defer log.Sync()
	log.Info("starting AgriMitra backend", zap.String("addr", cfg.Server.Addr()))

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	llmClient := llm.NewOpenAIClient(cfg.AzureOpenAI)
	speechClient := azurespeech.NewClient(azurespeech.Config{
		Key:    cfg.AzureSpeech.Key,
		Region: cfg.AzureSpeech.Region,
	})

	chatService := services.NewChatService(llmClient, log)
	visionService := services.NewVisionService(llmClient, log)
	speechService := services.NewSpeechService(speechClient, log)
	marketService := services.NewMarketService()
	schemeService := services.NewSchemeService()

	r := gin.New()
	middleware.Setup(r)
	routes.Register(r,
		handlers.NewChatHandler(chatService, visionService, log),
		handlers.NewSpeechHandler(speechService, log),
		handlers.NewMarketHandler(marketService),
		handlers.NewSchemeHandler(schemeService),
		handlers.NewLiveChatHandler(chatService, log),
	)

	if err := r.Run(cfg.Server.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
