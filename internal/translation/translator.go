package translation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Translator translates a Chinese term to English
type Translator interface {
	// Translate returns the English translation of term
	Translate(ctx context.Context, term string) (string, error)

	// Name returns the translator name
	Name() string

	// IsAvailable checks if the translator is properly configured
	IsAvailable() error
}

// Config holds translation provider configuration
type Config struct {
	Provider string // Translator name: "openai" or "gemini"
	Fallback string // Fallback translator name, empty for none

	OpenAIKey   string
	OpenAIModel string

	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: defaultOpenAIModel,
		GeminiModel: defaultGeminiModel,
	}
}

// NewTranslator creates the appropriate translator based on configuration
func NewTranslator(config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		return NewOpenAITranslator(config.OpenAIKey, config.OpenAIModel), nil

	case "gemini":
		return NewGeminiTranslator(config.GeminiKey, config.GeminiModel), nil

	default:
		return nil, fmt.Errorf("unknown translator: %s", config.Provider)
	}
}

// NewTranslatorChain builds the configured translator with its fallback
func NewTranslatorChain(config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	primary, err := NewTranslator(config)
	if err != nil {
		return nil, err
	}
	if config.Fallback == "" || config.Fallback == config.Provider {
		return primary, nil
	}

	fallbackConfig := *config
	fallbackConfig.Provider = config.Fallback
	fallback, err := NewTranslator(&fallbackConfig)
	if err != nil {
		return nil, err
	}

	return NewTranslatorWithFallback(primary, fallback), nil
}

// TranslatorWithFallback wraps a primary translator with a fallback option
type TranslatorWithFallback struct {
	primary  Translator
	fallback Translator
}

// NewTranslatorWithFallback creates a translator that falls back to secondary if primary fails
func NewTranslatorWithFallback(primary, fallback Translator) Translator {
	return &TranslatorWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Translate tries primary translator first, falls back to secondary on error
func (t *TranslatorWithFallback) Translate(ctx context.Context, term string) (string, error) {
	translation, err := t.primary.Translate(ctx, term)
	if err != nil {
		fmt.Printf("Primary translator (%s) failed: %v. Falling back to %s\n",
			t.primary.Name(), err, t.fallback.Name())
		return t.fallback.Translate(ctx, term)
	}
	return translation, nil
}

// Name returns the translator name
func (t *TranslatorWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", t.primary.Name(), t.fallback.Name())
}

// IsAvailable checks if at least one translator is available
func (t *TranslatorWithFallback) IsAvailable() error {
	primaryErr := t.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := t.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both translators unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

// SaveTranslation saves the translation to a file in the word directory
func SaveTranslation(wordDir, term, translation string) error {
	outputFile := filepath.Join(wordDir, "translation.txt")
	content := fmt.Sprintf("%s = %s\n", term, translation)

	if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write translation file: %w", err)
	}

	return nil
}

// TranslationCache stores translations in memory for batch operations
type TranslationCache struct {
	translations map[string]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(term, translation string) {
	tc.translations[term] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(term string) (string, bool) {
	translation, ok := tc.translations[term]
	return translation, ok
}

// GetAll returns all cached translations
func (tc *TranslationCache) GetAll() map[string]string {
	// Return a copy to prevent external modification
	result := make(map[string]string)
	for k, v := range tc.translations {
		result[k] = v
	}
	return result
}
