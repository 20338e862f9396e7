package audio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheFilePath(t *testing.T) {
	path := cacheFilePath("/cache", "你好", "google", "zh-CN")

	if !strings.HasPrefix(path, "/cache/") {
		t.Errorf("Path %q not below cache dir", path)
	}
	if !strings.HasSuffix(path, ".mp3") {
		t.Errorf("Path %q missing .mp3 suffix", path)
	}

	// Shard directory is two characters
	rel, _ := filepath.Rel("/cache", path)
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) != 2 || len(parts[0]) != 2 {
		t.Errorf("Expected two-char shard subdirectory, got %q", rel)
	}

	// Same key, same path; different key, different path
	if again := cacheFilePath("/cache", "你好", "google", "zh-CN"); again != path {
		t.Errorf("Cache path not deterministic: %q vs %q", path, again)
	}
	if other := cacheFilePath("/cache", "你好", "baidu", "zh-CN"); other == path {
		t.Error("Different providers share a cache path")
	}
	if other := cacheFilePath("/cache", "你好", "google", "yue"); other == path {
		t.Error("Different locales share a cache path")
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "sub", "dst.mp3")

	if err := os.WriteFile(src, []byte("audio"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "audio" {
		t.Errorf("Copied content = %q, want audio", string(data))
	}
}

func TestCacheStats(t *testing.T) {
	dir := t.TempDir()

	count, size, err := CacheStats(dir)
	if err != nil {
		t.Fatalf("CacheStats failed: %v", err)
	}
	if count != 0 || size != 0 {
		t.Errorf("Empty cache stats = %d files, %d bytes", count, size)
	}

	if err := os.MkdirAll(filepath.Join(dir, "ab"), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ab", "cd.mp3"), []byte("12345"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	count, size, err = CacheStats(dir)
	if err != nil {
		t.Fatalf("CacheStats failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 cached file, got %d", count)
	}
	if size != 5 {
		t.Errorf("Expected 5 bytes, got %d", size)
	}

	// Missing directory reports empty, not an error
	count, size, err = CacheStats(filepath.Join(dir, "missing"))
	if err != nil || count != 0 || size != 0 {
		t.Errorf("Missing dir stats = %d, %d, %v", count, size, err)
	}

	if err := ClearCache(dir); err != nil {
		t.Fatalf("ClearCache failed: %v", err)
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("ClearCache left the cache directory behind")
	}
}
