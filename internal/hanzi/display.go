package hanzi

import (
	"strings"

	"codeberg.org/snonux/hanzirecall/internal/transcribe"
)

// Silhouette replaces every Han character with an underscore, keeping word
// boundaries as spaces: ["你好", "世界"] → "__ __". Used for recall-side
// card templates that hide the headword.
func Silhouette(words []string) string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		var b strings.Builder
		for _, r := range word {
			if IsHan(r) {
				b.WriteRune('_')
			} else {
				b.WriteRune(r)
			}
		}
		if s := b.String(); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}

// FormatClassifiers renders CC-CEDICT classifier tokens for display. The
// raw token "個|个[ge4]" keeps both scripts and gets its reading tone-marked:
// "個|个[gè]". Tokens are joined with ", ".
func FormatClassifiers(classifiers []string) string {
	out := make([]string, 0, len(classifiers))
	for _, cl := range classifiers {
		out = append(out, formatClassifier(cl))
	}
	return strings.Join(out, ", ")
}

func formatClassifier(cl string) string {
	start := strings.Index(cl, "[")
	end := strings.LastIndex(cl, "]")
	if start < 0 || end < start {
		return cl
	}
	reading := transcribe.Mark(cl[start+1 : end])
	return cl[:start+1] + reading + cl[end:]
}
