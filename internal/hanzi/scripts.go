package hanzi

import (
	"strings"
	"unicode"

	"codeberg.org/snonux/hanzirecall/internal/dict"
)

// IsHan reports whether r is a Han character.
func IsHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// HasHan reports whether s contains at least one Han character.
func HasHan(s string) bool {
	for _, r := range s {
		if IsHan(r) {
			return true
		}
	}
	return false
}

// Converter rewrites text between simplified and traditional script using
// dictionary headwords, longest word first, with unknown characters passed
// through unchanged.
type Converter struct {
	store *dict.Store
}

// NewConverter creates a script converter backed by store.
func NewConverter(store *dict.Store) *Converter {
	return &Converter{store: store}
}

// ToSimplified converts text to simplified script.
func (c *Converter) ToSimplified(text string) (string, error) {
	return c.convert(text, true)
}

// ToTraditional converts text to traditional script.
func (c *Converter) ToTraditional(text string) (string, error) {
	return c.convert(text, false)
}

func (c *Converter) convert(text string, simplified bool) (string, error) {
	var out strings.Builder
	runes := []rune(text)

	for len(runes) > 0 {
		if !IsHan(runes[0]) {
			out.WriteRune(runes[0])
			runes = runes[1:]
			continue
		}

		word, ok, err := c.store.LongestPrefix(string(runes))
		if err != nil {
			return "", err
		}
		if !ok {
			out.WriteRune(runes[0])
			runes = runes[1:]
			continue
		}

		entry, found, err := c.store.First(word)
		if err != nil {
			return "", err
		}
		if found {
			out.WriteString(entry.HeadwordFor(simplified))
		} else {
			out.WriteString(word)
		}
		runes = runes[len([]rune(word)):]
	}

	return out.String(), nil
}
