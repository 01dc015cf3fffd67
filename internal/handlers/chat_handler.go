package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agrimitra/internal/models"
	"agrimitra/internal/services"
)

// maxUploadSize caps uploaded image files at 10MB.
const maxUploadSize = 10 << 20

// ChatHandler serves the chat and image-analysis endpoints.
type ChatHandler struct {
	chat   *services.ChatService
	vision *services.VisionService
	logger *zap.Logger
}

// NewChatHandler creates the chat handler.
func NewChatHandler(chat *services.ChatService, vision *services.VisionService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, vision: vision, logger: logger}
}

// Message handles POST /api/chat/message.
func (h *ChatHandler) Message(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.chat.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("chat message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnalyzeImage handles POST /api/chat/analyze-image.
func (h *ChatHandler) AnalyzeImage(c *gin.Context) {
	var req models.ImageAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Query == "" {
		req.Query = "Analyze this crop image for diseases or issues"
	}

	resp, err := h.vision.AnalyzeImage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidImage) || errors.Is(err, services.ErrImageTooSmall) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("image analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze image"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadImage handles POST /api/chat/upload-image. It accepts a multipart
// image file, re-encodes it sized for analysis, and returns the base64 data
// the analyze-image endpoint expects.
func (h *ChatHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an image"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large (max 10MB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	content := make([]byte, fileHeader.Size)
	if _, err := io.ReadFull(file, content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	optimized, err := h.vision.OptimizeUpload(content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or corrupted image file"})
		return
	}

	c.JSON(http.StatusOK, models.UploadImageResponse{
		ImageBase64: base64.StdEncoding.EncodeToString(optimized),
		Filename:    fileHeader.Filename,
		ContentType: "image/jpeg",
		Optimized:   true,
		Size:        len(optimized),
	})
}
