package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Card represents a single Chinese vocabulary flashcard
type Card struct {
	Hanzi       string // headword as entered
	Meaning     string // English translation
	Pinyin      string // tone-marked reading
	Color       string // tone-coloured headword markup
	AudioFile   string // path to the pronunciation recording
	Traditional string // traditional form when it differs from the headword
	Bopomofo    string // zhuyin reading
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	MediaFolder    string // Folder containing media files
	IncludeHeaders bool   // Include CSV headers
	AudioFormat    string // Audio file format (mp3, wav)
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		MediaFolder:    ".",
		IncludeHeaders: true,
		AudioFormat:    "mp3",
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// csvHeaders is the column order of the CSV export. It matches the field
// order of the "Chinese Vocabulary" note type in the .apkg export.
var csvHeaders = []string{"Hanzi", "Meaning", "Pinyin", "Color", "Audio", "Traditional", "Bopomofo"}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if g.options.IncludeHeaders {
		if err := writer.Write(csvHeaders); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Hanzi,
			card.Meaning,
			card.Pinyin,
			card.Color,
			g.formatAudioField(card.AudioFile),
			card.Traditional,
			card.Bopomofo,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// formatAudioField formats the audio file reference for Anki.
// Anki audio format: [sound:filename.mp3]
func (g *Generator) formatAudioField(audioFile string) string {
	if audioFile == "" {
		return ""
	}
	return fmt.Sprintf("[sound:%s]", filepath.Base(audioFile))
}

// GenerateFromDirectory creates cards from a directory of per-word material
// directories as written by the batch processor: word.txt holds the headword,
// fields.txt the generated fields ("Name = value" lines), translation.txt the
// "word = meaning" pair, plus the pronunciation recording.
func (g *Generator) GenerateFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		// Skip hidden directories like .trashbin
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		wordDir := filepath.Join(dir, entry.Name())
		card := Card{}

		if data, err := os.ReadFile(filepath.Join(wordDir, "word.txt")); err == nil {
			card.Hanzi = strings.TrimSpace(string(data))
		}
		if card.Hanzi == "" {
			card.Hanzi = entry.Name()
		}

		if data, err := os.ReadFile(filepath.Join(wordDir, "fields.txt")); err == nil {
			applyFields(&card, string(data))
		}

		// The translation file covers material generated before fields.txt
		// existed or with translation-only runs.
		if card.Meaning == "" {
			translationFile := filepath.Join(wordDir, "translation.txt")
			if data, err := os.ReadFile(translationFile); err == nil {
				if _, meaning, ok := strings.Cut(string(data), "="); ok {
					card.Meaning = strings.TrimSpace(meaning)
				}
			}
		}

		card.AudioFile = findAudioFile(wordDir)

		// Only add card if it has at least some content
		if card.AudioFile != "" || card.Meaning != "" || card.Pinyin != "" {
			g.AddCard(card)
		}
	}

	return nil
}

// applyFields parses "Name = value" lines into the card.
func applyFields(card *Card, data string) {
	for _, line := range strings.Split(data, "\n") {
		name, value, ok := strings.Cut(line, " = ")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(name) {
		case "Hanzi":
			card.Hanzi = value
		case "Meaning":
			card.Meaning = value
		case "Pinyin":
			card.Pinyin = value
		case "Color":
			card.Color = value
		case "Traditional":
			card.Traditional = value
		case "Bopomofo":
			card.Bopomofo = value
		}
	}
}

// findAudioFile returns the first pronunciation recording in wordDir.
func findAudioFile(wordDir string) string {
	files, err := os.ReadDir(wordDir)
	if err != nil {
		return ""
	}
	for _, ext := range []string{".mp3", ".wav"} {
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			if strings.HasSuffix(f.Name(), ext) {
				return filepath.Join(wordDir, f.Name())
			}
		}
	}
	return ""
}

// GeneratePackage creates a CSV plus collection.media directory for manual
// import.
// Deprecated: Use GenerateAPKG for proper .apkg format
func (g *Generator) GeneratePackage(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	mediaDir := filepath.Join(outputDir, "collection.media")
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	for i, card := range g.cards {
		if card.AudioFile != "" {
			newPath, err := g.copyMediaFile(card.AudioFile, mediaDir)
			if err != nil {
				return fmt.Errorf("failed to copy audio file: %w", err)
			}
			g.cards[i].AudioFile = newPath
		}
	}

	g.options.OutputPath = filepath.Join(outputDir, "import.csv")

	return g.GenerateCSV()
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)

	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}

	return apkgGen.GenerateAPKG(outputPath)
}

// copyMediaFile copies a media file to the destination directory, generating
// a unique name on collision.
func (g *Generator) copyMediaFile(src, destDir string) (string, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return "", err
	}

	filename := filepath.Base(src)
	destPath := filepath.Join(destDir, filename)

	if _, err := os.Stat(destPath); err == nil {
		ext := filepath.Ext(filename)
		base := strings.TrimSuffix(filename, ext)
		for i := 1; ; i++ {
			filename = fmt.Sprintf("%s_%d%s", base, i, ext)
			destPath = filepath.Join(destDir, filename)
			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				break
			}
		}
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer srcFile.Close()

	destFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(srcFile); err != nil {
		return "", err
	}

	if err := os.Chmod(destPath, srcInfo.Mode()); err != nil {
		return "", err
	}

	return filename, nil
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withAudio int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.AudioFile != "" {
			withAudio++
		}
	}

	return
}
