package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agrimitra/internal/llm"
	"agrimitra/internal/models"
	"agrimitra/internal/services"
)

// fakeLLM plays back a canned answer.
type fakeLLM struct {
	answer string
	err    error
}

func (f *fakeLLM) Complete(_ context.Context, _ []llm.Message) (string, error) {
	return f.answer, f.err
}

func newChatRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	chat := NewChatHandler(
		services.NewChatService(client, log),
		services.NewVisionService(client, log),
		log,
	)

	r := gin.New()
	r.POST("/api/chat/message", chat.Message)
	r.POST("/api/chat/analyze-image", chat.AnalyzeImage)
	r.POST("/api/chat/upload-image", chat.UploadImage)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func imageBase64(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{G: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestChatHandler_Message(t *testing.T) {
	r := newChatRouter(&fakeLLM{answer: "Check for early blight."})

	w := postJSON(t, r, "/api/chat/message", models.ChatRequest{
		Message:  "My tomato leaves have yellow spots",
		Language: "en",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Check for early blight.", resp.Response)
	assert.NotEmpty(t, resp.ConversationID)
	assert.Len(t, resp.SuggestedActions, 3)
}

func TestChatHandler_Message_MissingMessage(t *testing.T) {
	r := newChatRouter(&fakeLLM{})
	w := postJSON(t, r, "/api/chat/message", gin.H{"language": "en"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_Message_ProviderError(t *testing.T) {
	r := newChatRouter(&fakeLLM{err: errors.New("rate limited")})
	w := postJSON(t, r, "/api/chat/message", models.ChatRequest{Message: "hello"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestChatHandler_AnalyzeImage(t *testing.T) {
	answer := "Early blight detected.\nConfidence: 82%\n1. Remove affected leaves immediately\nApply neem oil spray twice a week"
	r := newChatRouter(&fakeLLM{answer: answer})

	w := postJSON(t, r, "/api/chat/analyze-image", models.ImageAnalysisRequest{
		ImageBase64: imageBase64(t, 120, 120),
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ImageAnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, answer, resp.Analysis)
	require.NotNil(t, resp.DiseaseDetected)
	assert.Equal(t, "Blight", *resp.DiseaseDetected)
	require.NotNil(t, resp.ConfidenceScore)
	assert.InDelta(t, 0.82, *resp.ConfidenceScore, 1e-9)
	assert.Equal(t, []string{"1. Remove affected leaves immediately"}, resp.RecommendedActions)
	assert.Equal(t, []string{"Apply neem oil spray twice a week"}, resp.LocalRemedies)
}

func TestChatHandler_AnalyzeImage_InvalidImage(t *testing.T) {
	r := newChatRouter(&fakeLLM{})
	w := postJSON(t, r, "/api/chat/analyze-image", models.ImageAnalysisRequest{
		ImageBase64: "not-valid-base64!!!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_AnalyzeImage_TooSmall(t *testing.T) {
	r := newChatRouter(&fakeLLM{})
	w := postJSON(t, r, "/api/chat/analyze-image", models.ImageAnalysisRequest{
		ImageBase64: imageBase64(t, 30, 30),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_UploadImage(t *testing.T) {
	r := newChatRouter(&fakeLLM{})

	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	var imgBuf bytes.Buffer
	require.NoError(t, imaging.Encode(&imgBuf, img, imaging.PNG))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="crop.png"`}
	header["Content-Type"] = []string{"image/png"}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(imgBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/chat/upload-image", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.UploadImageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "crop.png", resp.Filename)
	assert.Equal(t, "image/jpeg", resp.ContentType)
	assert.True(t, resp.Optimized)
	assert.Equal(t, resp.Size, len(mustDecode(t, resp.ImageBase64)))
}

func TestChatHandler_UploadImage_WrongType(t *testing.T) {
	r := newChatRouter(&fakeLLM{})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="notes.txt"`}
	header["Content-Type"] = []string{"text/plain"}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("just text"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/chat/upload-image", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "must be an image"))
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	return data
}
