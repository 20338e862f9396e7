package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	googleTTSURL  = "https://translate.google.com/translate_tts"
	googleTimeout = 30 * time.Second

	// The endpoint serves browsers only and rejects bare client requests.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// GoogleProvider implements Provider interface for the Google Translate TTS endpoint
type GoogleProvider struct {
	config     *Config
	httpClient *http.Client
	rateLimit  *rateLimiter
	endpoint   string
}

// NewGoogleProvider creates a new Google Translate TTS provider
func NewGoogleProvider(config *Config) *GoogleProvider {
	return &GoogleProvider{
		config:     config,
		httpClient: &http.Client{Timeout: googleTimeout},
		rateLimit:  newRateLimiter(config.RequestsPerMinute),
		endpoint:   googleTTSURL,
	}
}

// GenerateAudio fetches spoken audio for text and saves it to outputFile
func (p *GoogleProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateChineseText(text); err != nil {
		return err
	}

	if filepath.Ext(outputFile) == "" {
		outputFile += ".mp3"
	}

	// Check cache first
	cacheFile := ""
	if p.config.EnableCache && p.config.CacheDir != "" {
		cacheFile = cacheFilePath(p.config.CacheDir, text, "google", p.ttsLang())
		if _, err := os.Stat(cacheFile); err == nil {
			// Cache hit - copy cached file
			return copyFile(cacheFile, outputFile)
		}
	}

	// Apply rate limiting
	p.rateLimit.wait()

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", p.ttsLang())
	params.Set("total", "1")
	params.Set("idx", "0")
	params.Set("textlen", fmt.Sprintf("%d", len([]rune(text))))
	params.Set("client", "tw-ob")

	reqURL := p.endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{Provider: "google", RetryAfter: 60}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &FetchError{
			Provider: "google",
			Code:     fmt.Sprintf("%d", resp.StatusCode),
			Message:  string(body),
		}
	}
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/html") {
		return &FetchError{
			Provider: "google",
			Code:     "200",
			Message:  "endpoint returned an error page instead of audio",
		}
	}

	if err := writeAudioResponse(resp.Body, outputFile, "google"); err != nil {
		return err
	}

	// Cache the result if caching is enabled
	if cacheFile != "" {
		_ = copyFile(outputFile, cacheFile) // Ignore cache errors
	}

	return nil
}

// ttsLang maps the configured locale to the endpoint's tl parameter
func (p *GoogleProvider) ttsLang() string {
	switch p.config.Locale {
	case LocaleTaiwan:
		return "zh-TW"
	case LocaleCantonese:
		return "yue"
	default:
		return "zh-CN"
	}
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// IsAvailable checks if the provider is usable; the endpoint needs no key
func (p *GoogleProvider) IsAvailable() error {
	return nil
}

// writeAudioResponse streams the response body to outputFile
func writeAudioResponse(body io.Reader, outputFile, provider string) error {
	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, body)
	if err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if written == 0 {
		return &FetchError{
			Provider: provider,
			Code:     "200",
			Message:  "no audio data received",
		}
	}

	return nil
}
