package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agrimitra/internal/clients/azurespeech"
	"agrimitra/internal/models"
)

// languageMappings expands the short language codes used by the API into the
// locale codes the speech service expects. Unknown codes pass through so
// callers may supply a full locale directly.
var languageMappings = map[string]string{
	"en": "en-US",
	"kn": "kn-IN",
	"hi": "hi-IN",
	"ta": "ta-IN",
}

// voiceMappings picks the default neural voice per locale.
var voiceMappings = map[string]string{
	"en-US": "en-US-AriaNeural",
	"kn-IN": "kn-IN-SapnaNeural",
	"hi-IN": "hi-IN-SwaraNeural",
	"ta-IN": "ta-IN-PallaviNeural",
}

const defaultVoice = "en-US-AriaNeural"

// supportedLanguages is the list exposed on the supported-languages endpoint.
var supportedLanguages = []models.Language{
	{Code: "en", Name: "English", FullCode: "en-US"},
	{Code: "kn", Name: "ಕನ್ನಡ (Kannada)", FullCode: "kn-IN"},
	{Code: "hi", Name: "हिन्दी (Hindi)", FullCode: "hi-IN"},
	{Code: "ta", Name: "தமிழ் (Tamil)", FullCode: "ta-IN"},
}

// SpeechService adapts the speech provider client to the API's language
// conventions.
type SpeechService struct {
	client *azurespeech.Client
	logger *zap.Logger
}

// NewSpeechService creates a speech service around the given provider client.
func NewSpeechService(client *azurespeech.Client, logger *zap.Logger) *SpeechService {
	return &SpeechService{client: client, logger: logger}
}

// SpeechToText transcribes an audio clip. Unrecognized audio yields an empty
// transcript with zero confidence, not an error.
func (s *SpeechService) SpeechToText(ctx context.Context, audio []byte, language string) (*models.SpeechResponse, error) {
	locale := mapLanguage(language)
	s.logger.Debug("recognizing speech",
		zap.String("language", locale), zap.Int("bytes", len(audio)))

	result, err := s.client.Recognize(ctx, audio, locale)
	if err != nil {
		return nil, fmt.Errorf("speech recognition: %w", err)
	}

	confidence := result.Confidence
	return &models.SpeechResponse{Text: result.Text, Confidence: &confidence}, nil
}

// TextToSpeech synthesizes audio for the text, choosing the default voice
// for the language when none is given.
func (s *SpeechService) TextToSpeech(ctx context.Context, text, language, voice string) ([]byte, error) {
	locale := mapLanguage(language)
	if voice == "" {
		voice = voiceMappings[locale]
		if voice == "" {
			voice = defaultVoice
		}
	}

	audio, err := s.client.Synthesize(ctx, text, locale, voice)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}
	return audio, nil
}

// SupportedLanguages lists the languages the speech endpoints accept.
func (s *SpeechService) SupportedLanguages() []models.Language {
	return supportedLanguages
}

func mapLanguage(language string) string {
	if language == "" {
		return "en-US"
	}
	if full, ok := languageMappings[language]; ok {
		return full
	}
	return language
}
