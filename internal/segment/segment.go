// Package segment splits Chinese text into dictionary words before per-word
// transcription and colourisation.
package segment

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"

	"codeberg.org/snonux/hanzirecall/internal/dict"
	"codeberg.org/snonux/hanzirecall/internal/hanzi"
)

// Segmenter splits text into words. Concatenating the returned segments
// reproduces the input exactly.
type Segmenter interface {
	Segment(text string) []string
}

// GseSegmenter wraps a go-ego/gse tokenizer.
type GseSegmenter struct {
	seg gse.Segmenter
}

// NewGseSegmenter loads the tokenizer's bundled dictionary. Loading is
// expensive; prefer Shared for process-wide use.
func NewGseSegmenter() (*GseSegmenter, error) {
	var s GseSegmenter
	if err := s.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("failed to load segmenter dictionary: %w", err)
	}
	return &s, nil
}

// Segment cuts text into words using the tokenizer's HMM mode.
func (s *GseSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return s.seg.Cut(text, true)
}

var (
	sharedOnce sync.Once
	sharedSeg  *GseSegmenter
	sharedErr  error
)

// Shared returns the process-wide tokenizer, loading its dictionary on
// first use.
func Shared() (*GseSegmenter, error) {
	sharedOnce.Do(func() {
		sharedSeg, sharedErr = NewGseSegmenter()
	})
	return sharedSeg, sharedErr
}

// DictSegmenter segments by greedy longest match against dictionary
// headwords. It is the fallback when the tokenizer is unavailable and the
// right choice for text only the bundled dictionary knows.
type DictSegmenter struct {
	store *dict.Store
}

// NewDictSegmenter creates a dictionary-driven segmenter backed by store.
func NewDictSegmenter(store *dict.Store) *DictSegmenter {
	return &DictSegmenter{store: store}
}

// Segment walks text taking the longest dictionary word at each position.
// Unknown Han characters become single-character segments; runs of non-Han
// characters stay together as one segment.
func (s *DictSegmenter) Segment(text string) []string {
	var segments []string
	runes := []rune(text)

	for len(runes) > 0 {
		if !hanzi.IsHan(runes[0]) {
			n := 1
			for n < len(runes) && !hanzi.IsHan(runes[n]) {
				n++
			}
			segments = append(segments, string(runes[:n]))
			runes = runes[n:]
			continue
		}

		word, ok, err := s.store.LongestPrefix(string(runes))
		if err != nil || !ok {
			segments = append(segments, string(runes[0]))
			runes = runes[1:]
			continue
		}
		segments = append(segments, word)
		runes = runes[len([]rune(word)):]
	}

	return segments
}
