package audio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestGoogleProviderGenerateAudio(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if got := r.URL.Query().Get("tl"); got != "zh-CN" {
			t.Errorf("tl = %q, want zh-CN", got)
		}
		if got := r.URL.Query().Get("q"); got != "你好" {
			t.Errorf("q = %q, want 你好", got)
		}
		if got := r.URL.Query().Get("client"); got != "tw-ob" {
			t.Errorf("client = %q, want tw-ob", got)
		}
		if ua := r.Header.Get("User-Agent"); ua != browserUserAgent {
			t.Errorf("User-Agent = %q, want browser agent", ua)
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("fake mp3 data"))
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	provider := NewGoogleProvider(&Config{
		Locale:            LocaleMandarin,
		CacheDir:          cacheDir,
		EnableCache:       true,
		RequestsPerMinute: 100,
	})
	provider.endpoint = server.URL

	outputFile := filepath.Join(t.TempDir(), "audio.mp3")
	if err := provider.GenerateAudio(context.Background(), "你好", outputFile); err != nil {
		t.Fatalf("GenerateAudio() failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Output file not created: %v", err)
	}
	if string(data) != "fake mp3 data" {
		t.Errorf("Output content = %q", string(data))
	}

	// Second call is served from cache
	outputFile2 := filepath.Join(t.TempDir(), "audio2.mp3")
	if err := provider.GenerateAudio(context.Background(), "你好", outputFile2); err != nil {
		t.Fatalf("Cached GenerateAudio() failed: %v", err)
	}
	if requests != 1 {
		t.Errorf("Expected 1 request, got %d", requests)
	}
}

func TestGoogleProviderLocales(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{LocaleMandarin, "zh-CN"},
		{LocaleTaiwan, "zh-TW"},
		{LocaleCantonese, "yue"},
		{"", "zh-CN"},
	}

	for _, tt := range tests {
		provider := NewGoogleProvider(&Config{Locale: tt.locale})
		if got := provider.ttsLang(); got != tt.want {
			t.Errorf("ttsLang() for locale %q = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestGoogleProviderErrorPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html>captcha</html>"))
	}))
	defer server.Close()

	provider := NewGoogleProvider(&Config{RequestsPerMinute: 100})
	provider.endpoint = server.URL

	err := provider.GenerateAudio(context.Background(), "你好", filepath.Join(t.TempDir(), "a.mp3"))
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got %v", err)
	}
	if fetchErr.Provider != "google" {
		t.Errorf("Provider = %q, want google", fetchErr.Provider)
	}
}

func TestGoogleProviderRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewGoogleProvider(&Config{RequestsPerMinute: 100})
	provider.endpoint = server.URL

	err := provider.GenerateAudio(context.Background(), "你好", filepath.Join(t.TempDir(), "a.mp3"))
	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("Expected RateLimitError, got %v", err)
	}
}

func TestGoogleProviderRejectsNonChinese(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	provider := NewGoogleProvider(&Config{RequestsPerMinute: 100})
	provider.endpoint = server.URL

	err := provider.GenerateAudio(context.Background(), "hello", filepath.Join(t.TempDir(), "a.mp3"))
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if requests != 0 {
		t.Errorf("Expected no requests for invalid text, got %d", requests)
	}
}
