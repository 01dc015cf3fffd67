// Package azurespeech is a minimal REST client for the Azure Cognitive
// Services speech endpoints: short-audio recognition and voice synthesis.
package azurespeech

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds the credentials and endpoints for the speech service. The
// endpoint fields are derived from Region when empty; tests point them at a
// local server.
type Config struct {
	Key         string
	Region      string
	STTEndpoint string // recognition endpoint override
	TTSEndpoint string // synthesis endpoint override
}

// Client calls the Azure speech REST API.
type Client struct {
	config Config
	client *http.Client
}

// RecognitionResult is the outcome of a speech-to-text call. Text is empty
// when nothing could be recognized.
type RecognitionResult struct {
	Text       string
	Confidence float64
}

// recognizeResponse mirrors the service's detailed-format JSON.
type recognizeResponse struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
	NBest             []struct {
		Confidence float64 `json:"Confidence"`
		Display    string  `json:"Display"`
	} `json:"NBest"`
}

// NewClient creates a speech client for the configured region.
func NewClient(config Config) *Client {
	if config.STTEndpoint == "" && config.Region != "" {
		config.STTEndpoint = fmt.Sprintf(
			"https://%s.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1",
			config.Region)
	}
	if config.TTSEndpoint == "" && config.Region != "" {
		config.TTSEndpoint = fmt.Sprintf(
			"https://%s.tts.speech.microsoft.com/cognitiveservices/v1",
			config.Region)
	}
	return &Client{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Recognize transcribes a short WAV/PCM clip. The language must be a full
// locale code such as "en-US". A clip the service cannot match yields an
// empty result, not an error.
func (c *Client) Recognize(ctx context.Context, audio []byte, language string) (*RecognitionResult, error) {
	url := fmt.Sprintf("%s?language=%s&format=detailed", c.config.STTEndpoint, language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("creating recognition request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.config.Key)
	req.Header.Set("Content-Type", "audio/wav; codecs=audio/pcm; samplerate=16000")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending recognition request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("speech service returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding recognition response: %w", err)
	}

	if parsed.RecognitionStatus != "Success" {
		// NoMatch, InitialSilenceTimeout and friends: no transcript.
		return &RecognitionResult{}, nil
	}

	result := &RecognitionResult{Text: parsed.DisplayText}
	if len(parsed.NBest) > 0 {
		result.Confidence = parsed.NBest[0].Confidence
	}
	return result, nil
}

// Synthesize renders text to 16kHz mono WAV audio with the given voice.
func (c *Client) Synthesize(ctx context.Context, text, language, voice string) ([]byte, error) {
	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
		return nil, fmt.Errorf("escaping synthesis text: %w", err)
	}
	ssml := fmt.Sprintf(
		"<speak version='1.0' xml:lang='%s'><voice name='%s'>%s</voice></speak>",
		language, voice, escaped.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.TTSEndpoint, bytes.NewBufferString(ssml))
	if err != nil {
		return nil, fmt.Errorf("creating synthesis request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.config.Key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", "riff-16khz-16bit-mono-pcm")
	req.Header.Set("User-Agent", "agrimitra")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending synthesis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("speech service returned %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading synthesized audio: %w", err)
	}
	return audio, nil
}
