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
	baiduTTSURL  = "https://fanyi.baidu.com/gettts"
	baiduTimeout = 30 * time.Second
)

// BaiduProvider implements Provider interface for the Baidu Fanyi TTS endpoint
type BaiduProvider struct {
	config     *Config
	httpClient *http.Client
	rateLimit  *rateLimiter
	endpoint   string
}

// NewBaiduProvider creates a new Baidu TTS provider
func NewBaiduProvider(config *Config) *BaiduProvider {
	return &BaiduProvider{
		config:     config,
		httpClient: &http.Client{Timeout: baiduTimeout},
		rateLimit:  newRateLimiter(config.RequestsPerMinute),
		endpoint:   baiduTTSURL,
	}
}

// GenerateAudio fetches spoken audio for text and saves it to outputFile
func (p *BaiduProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateChineseText(text); err != nil {
		return err
	}

	if filepath.Ext(outputFile) == "" {
		outputFile += ".mp3"
	}

	// Check cache first
	cacheFile := ""
	if p.config.EnableCache && p.config.CacheDir != "" {
		cacheFile = cacheFilePath(p.config.CacheDir, text, "baidu", p.ttsLang())
		if _, err := os.Stat(cacheFile); err == nil {
			// Cache hit - copy cached file
			return copyFile(cacheFile, outputFile)
		}
	}

	// Apply rate limiting
	p.rateLimit.wait()

	params := url.Values{}
	params.Set("lan", p.ttsLang())
	params.Set("text", text)
	params.Set("spd", "5")
	params.Set("source", "web")

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
		return &RateLimitError{Provider: "baidu", RetryAfter: 60}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &FetchError{
			Provider: "baidu",
			Code:     fmt.Sprintf("%d", resp.StatusCode),
			Message:  string(body),
		}
	}
	// The endpoint answers 200 with an HTML page for unsupported input.
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/html") {
		return &FetchError{
			Provider: "baidu",
			Code:     "200",
			Message:  "endpoint returned an error page instead of audio",
		}
	}

	if err := writeAudioResponse(resp.Body, outputFile, "baidu"); err != nil {
		return err
	}

	// Cache the result if caching is enabled
	if cacheFile != "" {
		_ = copyFile(outputFile, cacheFile) // Ignore cache errors
	}

	return nil
}

// ttsLang maps the configured locale to the endpoint's lan parameter
func (p *BaiduProvider) ttsLang() string {
	if p.config.Locale == LocaleCantonese {
		return "cte"
	}
	return "zh"
}

// Name returns the provider name
func (p *BaiduProvider) Name() string {
	return "baidu"
}

// IsAvailable checks if the provider is usable; the endpoint needs no key
func (p *BaiduProvider) IsAvailable() error {
	return nil
}
