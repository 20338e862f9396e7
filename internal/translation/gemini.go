package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator translates through the Google Gemini API
type GeminiTranslator struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiTranslator creates a new Gemini translator instance. The API
// client is created lazily on the first call because its constructor needs
// a context.
func NewGeminiTranslator(apiKey, model string) *GeminiTranslator {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiTranslator{
		apiKey: apiKey,
		model:  model,
	}
}

// Translate translates a Chinese term to English
func (t *GeminiTranslator) Translate(ctx context.Context, term string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	if t.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  t.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create Gemini client: %w", err)
		}
		t.client = client
	}

	prompt := fmt.Sprintf("Translate the Chinese word '%s' to English. Respond with only the English translation, nothing else.", term)
	result, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(result.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return translation, nil
}

// Name returns the translator name
func (t *GeminiTranslator) Name() string {
	return "gemini"
}

// IsAvailable checks if the API key is configured
func (t *GeminiTranslator) IsAvailable() error {
	if t.apiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
