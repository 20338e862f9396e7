package hanzi

import (
	"regexp"
	"strings"
)

var rubyRe = regexp.MustCompile(`\[[^\]]*\]`)

// Ruby pairs each Han character of text with its aligned reading in
// brackets: "你好" with ["nǐ","hǎo"] becomes "你[nǐ]好[hǎo]". This is the
// bracket form flashcard templates render as ruby text. Characters without
// a reading, and non-Han characters, stay bare.
func Ruby(text string, readings []string) string {
	var out strings.Builder
	i := 0
	for _, r := range text {
		out.WriteRune(r)
		if !IsHan(r) {
			continue
		}
		if i < len(readings) && readings[i] != "" {
			out.WriteString("[")
			out.WriteString(readings[i])
			out.WriteString("]")
		}
		i++
	}
	return out.String()
}

// StripRuby removes the bracketed readings again.
func StripRuby(s string) string {
	return rubyRe.ReplaceAllString(s, "")
}
