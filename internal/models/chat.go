package models

// ChatMessage is one prior turn of a conversation, supplied by the caller.
type ChatMessage struct {
	Role      string `json:"role"`                // "user" or "assistant"
	Content   string `json:"content"`             // message text
	Timestamp string `json:"timestamp,omitempty"` // optional, passed through untouched
}

// ChatRequest is the payload for POST /api/chat/message.
type ChatRequest struct {
	Message             string        `json:"message" binding:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
	Language            string        `json:"language"` // "en" default, "kn" for Kannada
}

// ChatResponse carries the assistant reply back to the client.
type ChatResponse struct {
	Response         string   `json:"response"`
	ConversationID   string   `json:"conversation_id,omitempty"`
	SuggestedActions []string `json:"suggested_actions"`
}

// ImageAnalysisRequest is the payload for POST /api/chat/analyze-image.
type ImageAnalysisRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	Query       string `json:"query"`
	Language    string `json:"language"`
}

// ImageAnalysisResponse is the structured result of a crop-image analysis.
// Analysis always holds the model's full answer; the remaining fields are
// best-effort extractions and may be empty.
type ImageAnalysisResponse struct {
	Analysis           string   `json:"analysis"`
	DiseaseDetected    *string  `json:"disease_detected"`
	ConfidenceScore    *float64 `json:"confidence_score"`
	RecommendedActions []string `json:"recommended_actions"`
	LocalRemedies      []string `json:"local_remedies"`
}

// UploadImageResponse is returned by POST /api/chat/upload-image after the
// uploaded file has been validated and re-encoded.
type UploadImageResponse struct {
	ImageBase64 string `json:"image_base64"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Optimized   bool   `json:"optimized"`
	Size        int    `json:"size"`
}
