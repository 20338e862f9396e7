package transcribe

import "strings"

// markedVowels indexes tone-marked vowel forms by base vowel. Index 0 is
// tone 1; the neutral tone has no mark.
var markedVowels = map[rune][4]rune{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'e': {'ē', 'é', 'ě', 'è'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
	'A': {'Ā', 'Á', 'Ǎ', 'À'},
	'E': {'Ē', 'É', 'Ě', 'È'},
	'I': {'Ī', 'Í', 'Ǐ', 'Ì'},
	'O': {'Ō', 'Ó', 'Ǒ', 'Ò'},
	'U': {'Ū', 'Ú', 'Ǔ', 'Ù'},
	'Ü': {'Ǖ', 'Ǘ', 'Ǚ', 'Ǜ'},
}

// baseVowels is the reverse index: tone-marked vowel → base vowel and tone.
var baseVowels = map[rune]struct {
	base rune
	tone int
}{}

func init() {
	for base, marks := range markedVowels {
		for i, m := range marks {
			baseVowels[m] = struct {
				base rune
				tone int
			}{base, i + 1}
		}
	}
}

// SplitSyllables splits a space-joined pinyin or jyutping string into
// syllables.
func SplitSyllables(s string) []string {
	return strings.Fields(s)
}

// Tone returns the trailing tone number of a numbered syllable (1–5 for
// pinyin, 1–6 for jyutping), or 0 when the syllable carries none.
func Tone(syllable string) int {
	if syllable == "" {
		return 0
	}
	last := syllable[len(syllable)-1]
	if last < '1' || last > '6' {
		return 0
	}
	return int(last - '0')
}

// ToneMarked returns the tone number of a tone-marked pinyin syllable:
// 1–4 from the diacritic, 5 when the syllable has vowels but no mark,
// 0 when it has neither.
func ToneMarked(syllable string) int {
	hasVowel := false
	for _, r := range syllable {
		if v, ok := baseVowels[r]; ok {
			return v.tone
		}
		if isPinyinVowel(r) {
			hasVowel = true
		}
	}
	if hasVowel {
		return 5
	}
	return 0
}

// MarkSyllable converts a numbered pinyin syllable to its tone-marked form:
// "zhong1" → "zhōng", "lv4" → "lǜ". Syllables without a trailing tone number
// pass through unchanged; the neutral tone drops its number and takes no mark.
func MarkSyllable(syllable string) string {
	tone := Tone(syllable)
	if tone == 0 || tone == 6 {
		return syllable
	}

	body := normalizeUmlaut(syllable[:len(syllable)-1])
	if tone == 5 {
		return body
	}

	runes := []rune(body)
	at := markPosition(runes)
	if at < 0 {
		return body
	}
	runes[at] = markedVowels[runes[at]][tone-1]
	return string(runes)
}

// markPosition picks the vowel that carries the tone mark: a/e if present,
// the o of "ou", otherwise the last vowel.
func markPosition(runes []rune) int {
	last := -1
	for i, r := range runes {
		switch r {
		case 'a', 'A', 'e', 'E':
			return i
		}
		if isPinyinVowel(r) {
			if r == 'o' || r == 'O' {
				if i+1 < len(runes) && (runes[i+1] == 'u' || runes[i+1] == 'U') {
					return i
				}
			}
			last = i
		}
	}
	return last
}

func isPinyinVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'ü', 'A', 'E', 'I', 'O', 'U', 'Ü':
		return true
	}
	return false
}

// normalizeUmlaut rewrites the v and u: spellings of ü.
func normalizeUmlaut(s string) string {
	s = strings.ReplaceAll(s, "u:", "ü")
	s = strings.ReplaceAll(s, "U:", "Ü")
	s = strings.ReplaceAll(s, "v", "ü")
	s = strings.ReplaceAll(s, "V", "Ü")
	return s
}

// Mark converts a space-joined numbered pinyin string to tone-marked form.
func Mark(s string) string {
	syllables := SplitSyllables(s)
	for i, syl := range syllables {
		syllables[i] = MarkSyllable(syl)
	}
	return strings.Join(syllables, " ")
}

// NumberSyllable converts a tone-marked pinyin syllable back to numbered
// form: "zhōng" → "zhong1", "lǜ" → "lv4". A mark-free syllable containing
// vowels is the neutral tone ("ma" → "ma5"); already-numbered syllables and
// vowel-free tokens pass through unchanged.
func NumberSyllable(syllable string) string {
	if Tone(syllable) != 0 {
		return syllable
	}

	runes := []rune(syllable)
	tone := 0
	for i, r := range runes {
		if v, ok := baseVowels[r]; ok {
			runes[i] = v.base
			tone = v.tone
			break
		}
	}

	body := denormalizeUmlaut(string(runes))
	if tone != 0 {
		return body + string(rune('0'+tone))
	}
	for _, r := range runes {
		if isPinyinVowel(r) {
			return body + "5"
		}
	}
	return syllable
}

// denormalizeUmlaut rewrites ü back to the v spelling used in numbered form.
func denormalizeUmlaut(s string) string {
	s = strings.ReplaceAll(s, "ü", "v")
	s = strings.ReplaceAll(s, "Ü", "V")
	return s
}

// Number converts a space-joined tone-marked pinyin string to numbered form.
func Number(s string) string {
	syllables := SplitSyllables(s)
	for i, syl := range syllables {
		syllables[i] = NumberSyllable(syl)
	}
	return strings.Join(syllables, " ")
}
