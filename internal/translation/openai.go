package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAITranslator translates through the OpenAI chat API
type OpenAITranslator struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAITranslator creates a new OpenAI translator instance
func NewOpenAITranslator(apiKey, model string) *OpenAITranslator {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAITranslator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Translate translates a Chinese term to English
func (t *OpenAITranslator) Translate(ctx context.Context, term string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the Chinese word '%s' to English. Respond with only the English translation, nothing else.", term),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the translator name
func (t *OpenAITranslator) Name() string {
	return "openai"
}

// IsAvailable checks if the API key is configured
func (t *OpenAITranslator) IsAvailable() error {
	if t.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
