package transcribe

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// CharReadings returns one numbered-pinyin reading per rune of text, most
// common reading first. Non-Han runes come back as themselves. This is the
// fallback for headwords the dictionary does not carry.
func CharReadings(text string) []string {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	args.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}

	readings := pinyin.Pinyin(text, args)
	out := make([]string, 0, len(readings))
	for _, r := range readings {
		if len(r) > 0 {
			out = append(out, r[0])
		}
	}
	return out
}

// CharNumbered joins the per-character readings into a space-separated
// numbered pinyin string.
func CharNumbered(text string) string {
	return strings.Join(CharReadings(text), " ")
}
