package providers

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/hanzirecall/internal/audio"
	"codeberg.org/snonux/hanzirecall/internal/translation"
)

// audioProviderNames are the known audio providers, in listing order.
var audioProviderNames = []string{"google", "baidu", "espeak"}

// translatorNames are the known translation providers, in listing order.
var translatorNames = []string{"openai", "gemini"}

// Lister reports the availability of audio and translation providers
type Lister struct {
	audioConfig       *audio.Config
	translationConfig *translation.Config
}

// NewLister creates a provider lister for the given configurations
func NewLister(audioConfig *audio.Config, translationConfig *translation.Config) *Lister {
	if audioConfig == nil {
		audioConfig = audio.DefaultProviderConfig()
	}
	if translationConfig == nil {
		translationConfig = translation.DefaultConfig()
	}
	return &Lister{
		audioConfig:       audioConfig,
		translationConfig: translationConfig,
	}
}

// ListAvailable prints every known provider with its availability. When an
// OpenAI API key is configured it also lists the chat models the key can use
// for translation.
func (l *Lister) ListAvailable(ctx context.Context) error {
	fmt.Println("Audio providers:")
	for _, name := range audioProviderNames {
		config := *l.audioConfig
		config.Provider = name
		config.Fallback = ""

		provider, err := audio.NewProvider(&config)
		if err != nil {
			fmt.Printf("  %-8s unavailable: %v\n", name, err)
			continue
		}
		if err := provider.IsAvailable(); err != nil {
			fmt.Printf("  %-8s unavailable: %v\n", name, err)
		} else {
			fmt.Printf("  %-8s available\n", name)
		}
	}

	fmt.Println("\nTranslation providers:")
	for _, name := range translatorNames {
		config := *l.translationConfig
		config.Provider = name
		config.Fallback = ""

		translator, err := translation.NewTranslator(&config)
		if err != nil {
			fmt.Printf("  %-8s unavailable: %v\n", name, err)
			continue
		}
		if err := translator.IsAvailable(); err != nil {
			fmt.Printf("  %-8s unavailable: %v\n", name, err)
		} else {
			fmt.Printf("  %-8s available\n", name)
		}
	}

	if l.translationConfig.OpenAIKey != "" {
		l.listOpenAIModels(ctx)
	}

	return nil
}

// listOpenAIModels queries the OpenAI API for chat models usable as
// translators. Failures only warn; the listing itself already succeeded.
func (l *Lister) listOpenAIModels(ctx context.Context) {
	client := openai.NewClient(l.translationConfig.OpenAIKey)
	models, err := client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to list OpenAI models: %v\n", err)
		return
	}

	var chatModels []string
	for _, model := range models.Models {
		if strings.Contains(model.ID, "gpt") {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	fmt.Println("\nOpenAI models usable for translation:")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
		return
	}
	for _, model := range chatModels {
		fmt.Printf("  %s\n", model)
	}
}
