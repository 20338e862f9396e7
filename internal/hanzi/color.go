package hanzi

import (
	"fmt"
	"regexp"
	"strings"

	"codeberg.org/snonux/hanzirecall/internal/transcribe"
)

// toneSpanRe matches the span markup ColorizeChars and ColorizeReading add.
var toneSpanRe = regexp.MustCompile(`</?span[^>]*>`)

// toneOf determines the tone of a syllable in either numbered (pinyin or
// jyutping, 1–6) or tone-marked form. 0 means undetermined.
func toneOf(syllable string) int {
	if tone := transcribe.Tone(syllable); tone != 0 {
		return tone
	}
	return transcribe.ToneMarked(syllable)
}

func spanOpen(tone int) string {
	return fmt.Sprintf(`<span class="tone%d">`, tone)
}

// ColorizeChars wraps each Han character of text in a tone span taken from
// the aligned readings, one syllable per character. Characters without a
// determinable tone, and non-Han characters, stay unwrapped. Readings may be
// numbered pinyin, numbered jyutping or tone-marked pinyin.
func ColorizeChars(text string, readings []string) string {
	var out strings.Builder
	i := 0
	for _, r := range text {
		if !IsHan(r) {
			out.WriteRune(r)
			continue
		}
		tone := 0
		if i < len(readings) {
			tone = toneOf(readings[i])
		}
		i++
		if tone == 0 {
			out.WriteRune(r)
			continue
		}
		out.WriteString(spanOpen(tone))
		out.WriteRune(r)
		out.WriteString("</span>")
	}
	return out.String()
}

// ColorizeReading wraps each syllable of a space-joined reading in its tone
// span. Syllables without a determinable tone stay unwrapped.
func ColorizeReading(reading string) string {
	syllables := transcribe.SplitSyllables(reading)
	for i, syl := range syllables {
		tone := toneOf(syl)
		if tone == 0 {
			continue
		}
		syllables[i] = spanOpen(tone) + syl + "</span>"
	}
	return strings.Join(syllables, " ")
}

// StripTones removes the span markup again, restoring the bare text.
func StripTones(s string) string {
	return toneSpanRe.ReplaceAllString(s, "")
}
