package transcribe

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	speech "google.golang.org/api/speech/v1"
)

// GoogleClient transcribes audio with the Google Speech-to-Text API.
// Authentication follows ADC (GOOGLE_APPLICATION_CREDENTIALS or ambient
// service-account credentials).
type GoogleClient struct {
	svc      *speech.Service
	language string
}

var _ Transcriber = (*GoogleClient)(nil)

// NewGoogleFromEnv creates a Speech client. SPEECH_LANGUAGE overrides the
// default pt-BR recognition language.
func NewGoogleFromEnv(ctx context.Context) (*GoogleClient, error) {
	svc, err := speech.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("create speech service: %w", err)
	}

	language := strings.TrimSpace(os.Getenv("SPEECH_LANGUAGE"))
	if language == "" {
		language = "pt-BR"
	}

	return &GoogleClient{svc: svc, language: language}, nil
}

// Transcribe implements Transcriber. The context bounds the API call; on
// deadline the error surfaces and the caller falls back to empty text.
func (c *GoogleClient) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", errors.New("empty audio payload")
	}

	config := &speech.RecognitionConfig{
		LanguageCode: c.language,
		Encoding:     encodingFor(mimeType),
	}
	if config.Encoding == "OGG_OPUS" {
		// WhatsApp voice notes are Opus in Ogg at 16 kHz.
		config.SampleRateHertz = 16000
	}

	req := &speech.RecognizeRequest{
		Audio: &speech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
		Config: config,
	}

	resp, err := c.svc.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

func encodingFor(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "ogg"), strings.Contains(mimeType, "opus"):
		return "OGG_OPUS"
	case strings.Contains(mimeType, "wav"):
		return "LINEAR16"
	case strings.Contains(mimeType, "flac"):
		return "FLAC"
	case strings.Contains(mimeType, "amr"):
		return "AMR"
	default:
		// Let the API sniff the container.
		return "ENCODING_UNSPECIFIED"
	}
}
