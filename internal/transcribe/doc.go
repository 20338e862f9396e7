// Package transcribe converts between Chinese romanisation forms.
//
// The canonical internal form is numbered pinyin as CC-CEDICT writes it
// ("zhong1 guo2", ü spelled v). From that form the package derives
// tone-marked pinyin ("zhōng guó"), zhuyin/bopomofo ("ㄓㄨㄥ ㄍㄨㄛˊ") and
// tone numbers for colourisation. Jyutping stays numbered, which is how it
// is conventionally written; only tone extraction applies to it.
//
// Conversions are total: syllables that do not parse pass through unchanged.
package transcribe
