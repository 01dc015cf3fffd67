package models

// SpeechToTextRequest is the payload for POST /api/speech/speech-to-text.
type SpeechToTextRequest struct {
	AudioBase64 string `json:"audio_base64"`
	Language    string `json:"language"` // short code ("en") or full locale ("en-US")
}

// TextToSpeechRequest is the payload for POST /api/speech/text-to-speech.
type TextToSpeechRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
	Voice    string `json:"voice"` // optional override of the default voice
}

// SpeechResponse is the recognition result.
type SpeechResponse struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// AudioResponse carries synthesized audio.
type AudioResponse struct {
	AudioBase64 string `json:"audio_base64"`
	Format      string `json:"format"`
}

// Language describes one supported speech language.
type Language struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	FullCode string `json:"full_code"`
}
