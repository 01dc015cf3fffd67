package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"agrimitra/internal/core"
	"agrimitra/internal/llm"
	"agrimitra/internal/models"
)

// Image boundary errors, mapped to 400 responses by the handlers.
var (
	ErrInvalidImage  = errors.New("invalid image data")
	ErrImageTooSmall = errors.New("image too small for analysis")
)

// maxImageDim is the longest side sent to the model; larger images are
// downsampled to keep request size and latency in check.
const maxImageDim = 1024

// jpegQuality is used when re-encoding images for the model.
const jpegQuality = 85

// minAnalysisDim rejects thumbnails too small to diagnose anything from.
const minAnalysisDim = 50

// VisionService runs crop-image analysis through the multimodal chat model
// and structures the free-text answer.
type VisionService struct {
	llm    llm.Client
	logger *zap.Logger
}

// NewVisionService creates a vision service backed by the given model client.
func NewVisionService(client llm.Client, logger *zap.Logger) *VisionService {
	return &VisionService{llm: client, logger: logger}
}

// AnalyzeImage decodes and prepares the submitted image, sends it to the
// model with the analysis instructions, and extracts structured fields from
// the answer. Image problems surface as ErrInvalidImage/ErrImageTooSmall;
// model errors propagate unchanged.
func (s *VisionService) AnalyzeImage(ctx context.Context, req models.ImageAnalysisRequest) (*models.ImageAnalysisResponse, error) {
	raw, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < minAnalysisDim || bounds.Dy() < minAnalysisDim {
		return nil, ErrImageTooSmall
	}

	encoded, err := encodeForModel(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	messages := core.BuildImageAnalysisConversation(
		base64.StdEncoding.EncodeToString(encoded), req.Query, req.Language)

	answer, err := s.llm.Complete(ctx, messages)
	if err != nil {
		s.logger.Error("image analysis completion failed", zap.Error(err))
		return nil, fmt.Errorf("image analysis completion: %w", err)
	}

	result := core.ParseAnalysis(answer)
	s.logger.Debug("image analysis parsed",
		zap.Bool("disease_detected", result.DiseaseDetected != nil),
		zap.Int("actions", len(result.RecommendedActions)),
		zap.Int("remedies", len(result.LocalRemedies)))
	return &models.ImageAnalysisResponse{
		Analysis:           result.Analysis,
		DiseaseDetected:    result.DiseaseDetected,
		ConfidenceScore:    result.ConfidenceScore,
		RecommendedActions: result.RecommendedActions,
		LocalRemedies:      result.LocalRemedies,
	}, nil
}

// OptimizeUpload validates an uploaded image and re-encodes it as a JPEG
// sized for analysis. Returns the optimized bytes.
func (s *VisionService) OptimizeUpload(content []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	encoded, err := encodeForModel(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return encoded, nil
}

// encodeForModel downsamples the image so its longer side fits maxImageDim
// (aspect ratio preserved; smaller images pass through) and encodes it as
// JPEG. JPEG encoding also flattens any alpha channel.
func encodeForModel(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() > maxImageDim || bounds.Dy() > maxImageDim {
		img = imaging.Fit(img, maxImageDim, maxImageDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
