package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agrimitra/internal/models"
	"agrimitra/internal/services"
)

// SpeechHandler serves the speech endpoints.
type SpeechHandler struct {
	speech *services.SpeechService
	logger *zap.Logger
}

// NewSpeechHandler creates the speech handler.
func NewSpeechHandler(speech *services.SpeechService, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{speech: speech, logger: logger}
}

// SpeechToText handles POST /api/speech/speech-to-text.
func (h *SpeechHandler) SpeechToText(c *gin.Context) {
	var req models.SpeechToTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid audio data"})
		return
	}
	if len(audio) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty audio"})
		return
	}

	resp, err := h.speech.SpeechToText(c.Request.Context(), audio, req.Language)
	if err != nil {
		h.logger.Error("speech recognition failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "speech recognition failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TextToSpeech handles POST /api/speech/text-to-speech.
func (h *SpeechHandler) TextToSpeech(c *gin.Context) {
	var req models.TextToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audio, err := h.speech.TextToSpeech(c.Request.Context(), req.Text, req.Language, req.Voice)
	if err != nil {
		h.logger.Error("speech synthesis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "speech synthesis failed"})
		return
	}

	c.JSON(http.StatusOK, models.AudioResponse{
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		Format:      "wav",
	})
}

// SupportedLanguages handles GET /api/speech/supported-languages.
func (h *SpeechHandler) SupportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.speech.SupportedLanguages()})
}
