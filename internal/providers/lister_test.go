package providers

import (
	"context"
	"testing"

	"codeberg.org/snonux/hanzirecall/internal/audio"
	"codeberg.org/snonux/hanzirecall/internal/translation"
)

func TestNewLister(t *testing.T) {
	lister := NewLister(nil, nil)

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.audioConfig == nil {
		t.Error("Audio config not defaulted")
	}

	if lister.translationConfig == nil {
		t.Error("Translation config not defaulted")
	}
}

func TestNewLister_KeepsConfigs(t *testing.T) {
	audioConfig := audio.DefaultProviderConfig()
	audioConfig.Locale = audio.LocaleCantonese
	translationConfig := translation.DefaultConfig()
	translationConfig.Provider = "gemini"

	lister := NewLister(audioConfig, translationConfig)

	if lister.audioConfig.Locale != audio.LocaleCantonese {
		t.Errorf("Audio locale = %s, want %s", lister.audioConfig.Locale, audio.LocaleCantonese)
	}
	if lister.translationConfig.Provider != "gemini" {
		t.Errorf("Translation provider = %s, want gemini", lister.translationConfig.Provider)
	}
}

func TestListAvailable(t *testing.T) {
	// No API keys configured: the listing must still complete, reporting
	// remote TTS as available and keyed translators as unavailable.
	lister := NewLister(audio.DefaultProviderConfig(), &translation.Config{})

	if err := lister.ListAvailable(context.Background()); err != nil {
		t.Errorf("ListAvailable failed: %v", err)
	}
}
