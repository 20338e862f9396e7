package segment

import (
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/hanzirecall/internal/dict"
)

func testStore(t *testing.T) *dict.Store {
	t.Helper()

	entries := []dict.Entry{
		{Traditional: "你", Simplified: "你", Pinyin: "ni3", Senses: []string{"you"}},
		{Traditional: "好", Simplified: "好", Pinyin: "hao3", Senses: []string{"good"}},
		{Traditional: "你好", Simplified: "你好", Pinyin: "ni3 hao3", Senses: []string{"hello"}},
		{Traditional: "世界", Simplified: "世界", Pinyin: "shi4 jie4", Senses: []string{"world"}},
	}

	dbPath := filepath.Join(t.TempDir(), "dict.db")
	if err := dict.Compile(entries, dbPath); err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	store, err := dict.Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDictSegmenter(t *testing.T) {
	seg := NewDictSegmenter(testStore(t))

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"longest match wins", "你好世界", []string{"你好", "世界"}},
		{"unknown char alone", "你好嗎", []string{"你好", "嗎"}},
		{"non-han run stays together", "你好ABC 123世界", []string{"你好", "ABC 123", "世界"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seg.Segment(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Segment(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Segment(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDictSegmenterConcatenation(t *testing.T) {
	seg := NewDictSegmenter(testStore(t))

	for _, text := range []string{"你好世界", "A你好B", "沒有的詞", ""} {
		got := seg.Segment(text)
		if joined := strings.Join(got, ""); joined != text {
			t.Errorf("Segments of %q concatenate to %q", text, joined)
		}
	}
}

func TestGseSegmenterConcatenation(t *testing.T) {
	if testing.Short() {
		t.Skip("tokenizer dictionary load is slow")
	}

	seg, err := Shared()
	if err != nil {
		t.Skipf("tokenizer dictionary unavailable: %v", err)
	}

	for _, text := range []string{"我爱北京", "Hello 世界"} {
		got := seg.Segment(text)
		if joined := strings.Join(got, ""); joined != text {
			t.Errorf("Segments of %q concatenate to %q", text, joined)
		}
	}
}
