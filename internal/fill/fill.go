package fill

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/hanzirecall/internal"
	"codeberg.org/snonux/hanzirecall/internal/audio"
	"codeberg.org/snonux/hanzirecall/internal/dict"
	"codeberg.org/snonux/hanzirecall/internal/hanzi"
	"codeberg.org/snonux/hanzirecall/internal/note"
	"codeberg.org/snonux/hanzirecall/internal/segment"
	"codeberg.org/snonux/hanzirecall/internal/transcribe"
	"codeberg.org/snonux/hanzirecall/internal/translation"
)

// Config holds the fill pipeline options.
type Config struct {
	Locale   string // TTS locale, also part of generated sound file names
	AudioDir string // directory pronunciation recordings are written to
}

// DefaultConfig returns the default fill configuration.
func DefaultConfig() *Config {
	return &Config{
		Locale:   audio.LocaleMandarin,
		AudioDir: ".",
	}
}

// Filler derives the dependent fields of a note from its headword. Audio
// and online translation are optional; without them the pipeline is fully
// offline.
type Filler struct {
	store      *dict.Store
	fields     *note.FieldMap
	segmenter  segment.Segmenter
	converter  *hanzi.Converter
	audio      audio.Provider
	translator translation.Translator
	cache      *translation.TranslationCache
	config     *Config
}

// New creates a filler backed by the given dictionary store. The default
// segmenter is the dictionary-driven one; audio and translation are off
// until a provider is set.
func New(store *dict.Store, config *Config) *Filler {
	if config == nil {
		config = DefaultConfig()
	}
	return &Filler{
		store:     store,
		fields:    note.NewFieldMap(),
		segmenter: segment.NewDictSegmenter(store),
		converter: hanzi.NewConverter(store),
		cache:     translation.NewTranslationCache(),
		config:    config,
	}
}

// SetFieldMap replaces the field name resolution, for decks with
// non-standard field names.
func (f *Filler) SetFieldMap(m *note.FieldMap) {
	f.fields = m
}

// SetSegmenter replaces the word segmenter.
func (f *Filler) SetSegmenter(s segment.Segmenter) {
	f.segmenter = s
}

// SetAudioProvider enables pronunciation fetching for empty Sound fields.
func (f *Filler) SetAudioProvider(p audio.Provider) {
	f.audio = p
}

// SetTranslator enables online translation for headwords the dictionary
// does not carry.
func (f *Filler) SetTranslator(t translation.Translator) {
	f.translator = t
}

// SetAudioDir changes where pronunciation recordings are written.
func (f *Filler) SetAudioDir(dir string) {
	f.config.AudioDir = dir
}

// derivedRoles are the fields the pipeline owns. They are filled while
// empty when the headword changes and erased when it is cleared.
var derivedRoles = []note.Role{
	note.RoleMeaning,
	note.RolePinyin,
	note.RolePinyinTaiwan,
	note.RoleBopomofo,
	note.RoleJyutping,
	note.RoleColor,
	note.RoleSound,
	note.RoleSimplified,
	note.RoleTraditional,
	note.RoleRuby,
	note.RoleSilhouette,
	note.RoleClassifier,
}

// UpdateFields reacts to an edit of the named field and reports whether any
// other field of the note changed as a result:
//
//   - the headword field was filled in: every empty derived field is
//     populated from the dictionary, readings and (when configured) the
//     audio and translation providers;
//   - the headword field was cleared: all derived fields are erased;
//   - a reading field (pinyin or jyutping) was corrected: the coloured and
//     ruby renderings are rebuilt from the corrected reading.
//
// Non-empty fields are never overwritten. Headwords missing from the
// dictionary fall back to per-character readings and leave the meaning
// empty; only dictionary store failures surface as errors. Audio and
// translation failures are reported as warnings and leave their field
// untouched.
func (f *Filler) UpdateFields(ctx context.Context, n *note.Note, editedField string) (bool, error) {
	if !n.Has(editedField) {
		return false, nil
	}
	role, ok := f.fields.Resolve(editedField)
	if !ok {
		return false, nil
	}

	switch role {
	case note.RoleHanzi:
		if n.Empty(editedField) {
			return f.eraseDerived(n), nil
		}
		return f.fillFromHeadword(ctx, n, n.Get(editedField))
	case note.RolePinyin, note.RoleJyutping:
		return f.refreshFromReading(n, n.Get(editedField)), nil
	}
	return false, nil
}

// wordReading holds the readings of one segmented word, one syllable per
// Han character.
type wordReading struct {
	syllables []string // numbered pinyin
	taiwan    []string // Taiwan variant where the dictionary notes one
	jyutping  []string // numbered jyutping, nil when the source has none
}

func (f *Filler) fillFromHeadword(ctx context.Context, n *note.Note, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if !hanzi.HasHan(text) {
		return false, nil
	}

	words := f.segmenter.Segment(text)
	readings, err := f.readWords(words)
	if err != nil {
		return false, err
	}

	var numbered, taiwan, jyutping []string
	jyutpingComplete := len(readings) > 0
	for _, r := range readings {
		numbered = append(numbered, r.syllables...)
		if r.taiwan != nil {
			taiwan = append(taiwan, r.taiwan...)
		} else {
			taiwan = append(taiwan, r.syllables...)
		}
		if r.jyutping != nil {
			jyutping = append(jyutping, r.jyutping...)
		} else {
			jyutpingComplete = false
		}
	}

	changed := false
	set := func(role note.Role, value string) {
		if f.fillField(n, role, value) {
			changed = true
		}
	}

	set(note.RolePinyin, transcribe.Mark(strings.Join(numbered, " ")))
	set(note.RolePinyinTaiwan, transcribe.Mark(strings.Join(taiwan, " ")))
	set(note.RoleBopomofo, transcribe.Bopomofo(strings.Join(taiwan, " ")))

	whole, wholeOK, err := f.store.First(text)
	if err != nil {
		return changed, err
	}
	switch {
	case wholeOK && whole.Jyutping != "":
		set(note.RoleJyutping, whole.Jyutping)
	case jyutpingComplete:
		set(note.RoleJyutping, strings.Join(jyutping, " "))
	}

	set(note.RoleColor, hanzi.ColorizeChars(text, numbered))

	marked := make([]string, len(numbered))
	for i, syl := range numbered {
		marked[i] = transcribe.MarkSyllable(syl)
	}
	set(note.RoleRuby, hanzi.Ruby(text, marked))
	set(note.RoleSilhouette, hanzi.Silhouette(words))

	simplified, err := f.converter.ToSimplified(text)
	if err != nil {
		return changed, err
	}
	if simplified != text {
		set(note.RoleSimplified, simplified)
	}
	traditional, err := f.converter.ToTraditional(text)
	if err != nil {
		return changed, err
	}
	if traditional != text {
		set(note.RoleTraditional, traditional)
	}

	if wholeOK && len(whole.Classifiers) > 0 {
		set(note.RoleClassifier, hanzi.FormatClassifiers(whole.Classifiers))
	}

	if field, ok := f.fields.FieldFor(n, note.RoleMeaning); ok && n.Empty(field) {
		meaning, err := f.meaningFor(ctx, text)
		if err != nil {
			return changed, err
		}
		if meaning != "" {
			n.Set(field, meaning)
			changed = true
		}
	}

	if f.audio != nil {
		if field, ok := f.fields.FieldFor(n, note.RoleSound); ok && n.Empty(field) {
			name, err := f.fetchAudio(ctx, text)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: audio generation failed for %s: %v\n", text, err)
			} else {
				n.Set(field, "[sound:"+name+"]")
				changed = true
			}
		}
	}

	return changed, nil
}

// readWords resolves one reading per Han word of the segmentation. Words
// the dictionary does not carry, and dictionary readings that do not align
// one syllable per character, fall back to per-character readings.
func (f *Filler) readWords(words []string) ([]wordReading, error) {
	var out []wordReading
	for _, word := range words {
		if !hanzi.HasHan(word) {
			continue
		}
		r, err := f.readWord(word)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *Filler) readWord(word string) (wordReading, error) {
	var r wordReading
	hanCount := 0
	for _, c := range word {
		if hanzi.IsHan(c) {
			hanCount++
		}
	}

	entry, ok, err := f.store.First(word)
	if err != nil {
		return r, err
	}
	if ok {
		syllables := transcribe.SplitSyllables(entry.Pinyin)
		if len(syllables) == hanCount {
			r.syllables = syllables
			if tw := entry.TaiwanPinyin(); tw != "" {
				if twSyls := transcribe.SplitSyllables(tw); len(twSyls) == hanCount {
					r.taiwan = twSyls
				}
			}
			if entry.Jyutping != "" {
				if jSyls := transcribe.SplitSyllables(entry.Jyutping); len(jSyls) == hanCount {
					r.jyutping = jSyls
				}
			}
			return r, nil
		}
	}

	r.syllables = hanReadings(word)
	return r, nil
}

// hanReadings returns per-character readings for the Han characters of
// word, dropping any non-Han positions so alignment with ColorizeChars and
// Ruby holds.
func hanReadings(word string) []string {
	readings := transcribe.CharReadings(word)
	var out []string
	i := 0
	for _, c := range word {
		if i >= len(readings) {
			break
		}
		if hanzi.IsHan(c) {
			out = append(out, readings[i])
		}
		i++
	}
	return out
}

// meaningFor resolves the translation of text: all dictionary senses first,
// then the online translator when one is configured. A missing translation
// is not an error; the field simply stays empty.
func (f *Filler) meaningFor(ctx context.Context, text string) (string, error) {
	entries, err := f.store.Lookup(text)
	if err != nil {
		return "", err
	}
	if meaning := dict.MeaningText(entries); meaning != "" {
		return meaning, nil
	}
	if f.translator == nil {
		return "", nil
	}
	if cached, ok := f.cache.Get(text); ok {
		return cached, nil
	}
	translated, err := f.translator.Translate(ctx, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: translation failed for %s: %v\n", text, err)
		return "", nil
	}
	f.cache.Add(text, translated)
	return translated, nil
}

// fetchAudio generates the pronunciation recording for text and returns the
// file name the Sound field should reference.
func (f *Filler) fetchAudio(ctx context.Context, text string) (string, error) {
	name := internal.SanitizeFilename(text) + "_" + f.config.Locale + ".mp3"
	outputFile := filepath.Join(f.config.AudioDir, name)
	if err := f.audio.GenerateAudio(ctx, text, outputFile); err != nil {
		return "", err
	}
	return name, nil
}

// fillField writes value into the field carrying role, but only when the
// note has such a field and it is still empty.
func (f *Filler) fillField(n *note.Note, role note.Role, value string) bool {
	if value == "" {
		return false
	}
	field, ok := f.fields.FieldFor(n, role)
	if !ok || !n.Empty(field) {
		return false
	}
	n.Set(field, value)
	return true
}

// eraseDerived clears every derived field, mirroring a cleared headword.
func (f *Filler) eraseDerived(n *note.Note) bool {
	changed := false
	for _, role := range derivedRoles {
		field, ok := f.fields.FieldFor(n, role)
		if !ok || n.Empty(field) {
			continue
		}
		n.Set(field, "")
		changed = true
	}
	return changed
}

// refreshFromReading rebuilds the coloured and ruby renderings after the
// user corrected a reading field. Unlike filling, this overwrites: the
// renderings must follow the corrected reading.
func (f *Filler) refreshFromReading(n *note.Note, reading string) bool {
	hanziField, ok := f.fields.FieldFor(n, note.RoleHanzi)
	if !ok || n.Empty(hanziField) {
		return false
	}
	text := strings.TrimSpace(n.Get(hanziField))

	syllables := transcribe.SplitSyllables(hanzi.StripTones(reading))

	changed := false
	if field, ok := f.fields.FieldFor(n, note.RoleColor); ok {
		v := hanzi.ColorizeChars(text, syllables)
		if n.Get(field) != v {
			n.Set(field, v)
			changed = true
		}
	}
	if field, ok := f.fields.FieldFor(n, note.RoleRuby); ok {
		marked := make([]string, len(syllables))
		for i, syl := range syllables {
			marked[i] = transcribe.MarkSyllable(syl)
		}
		v := hanzi.Ruby(text, marked)
		if n.Get(field) != v {
			n.Set(field, v)
			changed = true
		}
	}
	return changed
}
