package transcribe

import "strings"

// wholeSyllables maps pinyin syllables that do not decompose into an
// initial+final pair. Checked before the table split.
var wholeSyllables = map[string]string{
	"zhi": "ㄓ", "chi": "ㄔ", "shi": "ㄕ", "ri": "ㄖ",
	"zi": "ㄗ", "ci": "ㄘ", "si": "ㄙ",
	"yi": "ㄧ", "ya": "ㄧㄚ", "yao": "ㄧㄠ", "ye": "ㄧㄝ", "you": "ㄧㄡ",
	"yan": "ㄧㄢ", "yin": "ㄧㄣ", "yang": "ㄧㄤ", "ying": "ㄧㄥ",
	"wu": "ㄨ", "wa": "ㄨㄚ", "wo": "ㄨㄛ", "wai": "ㄨㄞ", "wei": "ㄨㄟ",
	"wan": "ㄨㄢ", "wen": "ㄨㄣ", "wang": "ㄨㄤ", "weng": "ㄨㄥ",
	"yu": "ㄩ", "yue": "ㄩㄝ", "yuan": "ㄩㄢ", "yun": "ㄩㄣ", "yong": "ㄩㄥ",
	"er": "ㄦ", "r": "ㄦ",
}

// initials in longest-match order: digraphs before their single-letter
// prefixes.
var initials = []struct {
	pinyin string
	zhuyin string
}{
	{"zh", "ㄓ"}, {"ch", "ㄔ"}, {"sh", "ㄕ"},
	{"b", "ㄅ"}, {"p", "ㄆ"}, {"m", "ㄇ"}, {"f", "ㄈ"},
	{"d", "ㄉ"}, {"t", "ㄊ"}, {"n", "ㄋ"}, {"l", "ㄌ"},
	{"g", "ㄍ"}, {"k", "ㄎ"}, {"h", "ㄏ"},
	{"j", "ㄐ"}, {"q", "ㄑ"}, {"x", "ㄒ"},
	{"r", "ㄖ"}, {"z", "ㄗ"}, {"c", "ㄘ"}, {"s", "ㄙ"},
}

var finals = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ê": "ㄝ",
	"ai": "ㄞ", "ei": "ㄟ", "ao": "ㄠ", "ou": "ㄡ",
	"an": "ㄢ", "en": "ㄣ", "ang": "ㄤ", "eng": "ㄥ", "ong": "ㄨㄥ",
	"i": "ㄧ", "ia": "ㄧㄚ", "iao": "ㄧㄠ", "ie": "ㄧㄝ", "iu": "ㄧㄡ",
	"ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ", "ing": "ㄧㄥ", "iong": "ㄩㄥ",
	"u": "ㄨ", "ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ", "ui": "ㄨㄟ",
	"uan": "ㄨㄢ", "un": "ㄨㄣ", "uang": "ㄨㄤ",
	"ü": "ㄩ", "üe": "ㄩㄝ", "üan": "ㄩㄢ", "ün": "ㄩㄣ",
}

var zhuyinTones = map[int]string{2: "ˊ", 3: "ˇ", 4: "ˋ"}

// BopomofoSyllable converts one numbered pinyin syllable to zhuyin:
// "zhong1" → "ㄓㄨㄥ", "guo2" → "ㄍㄨㄛˊ", "ma5" → "˙ㄇㄚ". Tone 1 carries
// no mark. Returns ok=false (and the input unchanged) for syllables that
// are not convertible pinyin.
func BopomofoSyllable(syllable string) (string, bool) {
	tone := Tone(syllable)
	body := syllable
	if tone >= 1 && tone <= 5 {
		body = syllable[:len(syllable)-1]
	} else {
		tone = 1
	}
	body = normalizeUmlaut(strings.ToLower(body))

	zhuyin, ok := convertBody(body)
	if !ok {
		return syllable, false
	}

	switch {
	case tone == 5:
		zhuyin = "˙" + zhuyin
	case tone >= 2 && tone <= 4:
		zhuyin += zhuyinTones[tone]
	}
	return zhuyin, true
}

func convertBody(body string) (string, bool) {
	if z, ok := wholeSyllables[body]; ok {
		return z, true
	}

	for _, ini := range initials {
		if !strings.HasPrefix(body, ini.pinyin) {
			continue
		}
		final := body[len(ini.pinyin):]
		if final == "" {
			continue
		}
		// After j/q/x a written u is ü.
		if ini.pinyin == "j" || ini.pinyin == "q" || ini.pinyin == "x" {
			if strings.HasPrefix(final, "u") {
				final = "ü" + final[len("u"):]
			}
		}
		if z, ok := finals[final]; ok {
			return ini.zhuyin + z, true
		}
		return "", false
	}

	// Bare finals ("a", "ai", "ê", ...).
	if z, ok := finals[body]; ok {
		return z, true
	}
	return "", false
}

// Bopomofo converts a space-joined numbered pinyin string to zhuyin.
// Unconvertible syllables pass through unchanged.
func Bopomofo(s string) string {
	syllables := SplitSyllables(s)
	for i, syl := range syllables {
		if z, ok := BopomofoSyllable(syl); ok {
			syllables[i] = z
		}
	}
	return strings.Join(syllables, " ")
}
