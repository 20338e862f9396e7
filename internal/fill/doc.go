// Package fill populates the dependent fields of a vocabulary note from its
// headword: translation, pinyin, bopomofo, jyutping, script variants,
// tone-coloured and ruby renderings, and a pronunciation recording. Fields
// are only written while empty so user edits are never overwritten.
package fill
