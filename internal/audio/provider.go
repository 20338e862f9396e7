package audio

import (
	"context"
	"fmt"
)

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// GenerateAudio generates audio from text and saves it to the specified file
	GenerateAudio(ctx context.Context, text string, outputFile string) error

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider     string // Provider name: "google", "baidu" or "espeak"
	Fallback     string // Fallback provider name, empty for none
	Locale       string // Speech locale: "zh-CN", "zh-TW" or "yue"
	OutputDir    string // Directory for output files
	OutputFormat string // Output format: "mp3" or "wav"

	// Cache settings shared by the remote providers
	CacheDir    string
	EnableCache bool

	// Politeness limit for the remote endpoints
	RequestsPerMinute int
}

// Supported locale values.
const (
	LocaleMandarin  = "zh-CN" // Mandarin, mainland pronunciation
	LocaleTaiwan    = "zh-TW" // Mandarin, Taiwan pronunciation
	LocaleCantonese = "yue"   // Cantonese
)

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:          "google",
		Fallback:          "baidu",
		Locale:            LocaleMandarin,
		OutputDir:         "./",
		OutputFormat:      "mp3",
		RequestsPerMinute: 20,
	}
}

// NewProvider creates the appropriate audio provider based on configuration.
// Remote providers come wrapped in a circuit breaker.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "google":
		return NewBreakerProvider(NewGoogleProvider(config)), nil

	case "baidu":
		return NewBreakerProvider(NewBaiduProvider(config)), nil

	case "espeak", "espeak-ng":
		return NewESpeakProvider(espeakConfigFor(config))

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}
}

// NewProviderChain builds the configured provider with its fallback, the
// order audio fetching actually runs in.
func NewProviderChain(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	primary, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if config.Fallback == "" || config.Fallback == config.Provider {
		return primary, nil
	}

	fallbackConfig := *config
	fallbackConfig.Provider = config.Fallback
	fallback, err := NewProvider(&fallbackConfig)
	if err != nil {
		return nil, err
	}

	return NewProviderWithFallback(primary, fallback), nil
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// GenerateAudio tries primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	err := p.primary.GenerateAudio(ctx, text, outputFile)
	if err != nil {
		// Log the primary error
		fmt.Printf("Primary provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())

		// Try fallback
		return p.fallback.GenerateAudio(ctx, text, outputFile)
	}
	return nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
