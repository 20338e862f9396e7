package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/hanzirecall/internal"
	"codeberg.org/snonux/hanzirecall/internal/anki"
	"codeberg.org/snonux/hanzirecall/internal/audio"
	"codeberg.org/snonux/hanzirecall/internal/batch"
	"codeberg.org/snonux/hanzirecall/internal/cli"
	"codeberg.org/snonux/hanzirecall/internal/dict"
	"codeberg.org/snonux/hanzirecall/internal/fill"
	"codeberg.org/snonux/hanzirecall/internal/note"
	"codeberg.org/snonux/hanzirecall/internal/segment"
	"codeberg.org/snonux/hanzirecall/internal/translation"
)

// noteFields are the field names of generated cards, the canonical alias of
// every role the fill pipeline derives plus the headword itself.
var noteFields = []string{
	"Hanzi", "Meaning", "Pinyin", "PinyinTW", "Bopomofo", "Jyutping",
	"Color", "Ruby", "Silhouette", "Simplified", "Traditional",
	"Classifier", "Sound",
}

// Processor handles the main term processing logic
type Processor struct {
	flags            *cli.Flags
	store            *dict.Store
	filler           *fill.Filler
	translationCache *translation.TranslationCache
}

// NewProcessor creates a new term processor. It opens the dictionary store
// and wires the fill pipeline with audio and translation providers per the
// flags and config.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	store, err := openStore(flags)
	if err != nil {
		return nil, err
	}

	filler := fill.New(store, &fill.Config{
		Locale:   flags.Locale,
		AudioDir: flags.OutputDir,
	})

	if aliases := cli.FieldAliases(); len(aliases) > 0 {
		filler.SetFieldMap(note.NewFieldMapWithOverrides(aliases))
	}

	if seg, err := segment.Shared(); err == nil {
		filler.SetSegmenter(seg)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: tokenizer unavailable (%v), using dictionary segmentation\n", err)
	}

	if !flags.NoAudio {
		provider, err := audio.NewProviderChain(audioConfig(flags))
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to create audio provider: %w", err)
		}
		filler.SetAudioProvider(provider)
	}

	if translator := newTranslator(flags); translator != nil {
		filler.SetTranslator(translator)
	}

	return &Processor{
		flags:            flags,
		store:            store,
		filler:           filler,
		translationCache: translation.NewTranslationCache(),
	}, nil
}

// Close releases the dictionary store.
func (p *Processor) Close() error {
	return p.store.Close()
}

// openStore opens the dictionary database named by the flags or config. The
// database is built by the hanzidict command; processing does not download.
func openStore(flags *cli.Flags) (*dict.Store, error) {
	path := flags.DictPath
	if path == "" {
		path = viper.GetString("dictionary.path")
	}
	if path == "" {
		path = dict.DefaultDatabasePath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("dictionary database not found at %s, run 'hanzidict build' first or pass --dict", path)
	}

	store, err := dict.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	return store, nil
}

// audioConfig builds the audio provider configuration from flags, letting
// config file values stand in for unchanged flag defaults.
func audioConfig(flags *cli.Flags) *audio.Config {
	config := audio.DefaultProviderConfig()
	config.Provider = flags.AudioProvider
	config.Fallback = flags.AudioFallback
	config.Locale = flags.Locale
	config.OutputDir = flags.OutputDir
	config.OutputFormat = flags.AudioFormat

	// Caching
	config.EnableCache = viper.GetBool("audio.enable_cache")
	config.CacheDir = viper.GetString("audio.cache_dir")
	if config.CacheDir == "" {
		config.CacheDir = "./.audio_cache"
	}

	// Use config file values if not overridden by flags
	if flags.AudioProvider == "google" && viper.IsSet("audio.provider") {
		config.Provider = viper.GetString("audio.provider")
	}
	if flags.AudioFallback == "baidu" && viper.IsSet("audio.fallback") {
		config.Fallback = viper.GetString("audio.fallback")
	}
	if flags.Locale == "zh-CN" && viper.IsSet("audio.locale") {
		config.Locale = viper.GetString("audio.locale")
	}
	if rpm := viper.GetInt("audio.requests_per_minute"); rpm > 0 {
		config.RequestsPerMinute = rpm
	}

	return config
}

// newTranslator builds the online translator chain, or nil when no usable
// provider is configured. Terms the dictionary knows never need it.
func newTranslator(flags *cli.Flags) translation.Translator {
	config := translation.DefaultConfig()
	config.Provider = flags.Translator
	config.Fallback = viper.GetString("translation.fallback")
	config.OpenAIKey = cli.GetOpenAIKey()
	config.GeminiKey = cli.GetGeminiKey()
	if model := viper.GetString("translation.openai_model"); model != "" {
		config.OpenAIModel = model
	}
	if model := viper.GetString("translation.gemini_model"); model != "" {
		config.GeminiModel = model
	}

	translator, err := translation.NewTranslatorChain(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, online translation disabled\n", err)
		return nil
	}
	if err := translator.IsAvailable(); err != nil {
		return nil
	}
	return translator
}

// ProcessBatch processes multiple terms from a batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Validate terms up front
	for _, entry := range entries {
		if err := audio.ValidateChineseText(entry.Hanzi); err != nil {
			return fmt.Errorf("invalid term '%s': %w", entry.Hanzi, err)
		}
	}

	// Track statistics
	skippedCount := 0
	processedCount := 0
	errorCount := 0

	// Process each entry
	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Hanzi)

		// Check if term already exists and has all required files
		if os.Getenv("DEBUG_BATCH") != "" {
			fmt.Printf("  [DEBUG] Checking if term is fully processed...\n")
		}
		if p.isWordFullyProcessed(entry.Hanzi) {
			wordDir := p.findCardDirectory(entry.Hanzi)
			fmt.Printf("  ✓ Skipping '%s' - already fully processed in %s\n", entry.Hanzi, filepath.Base(wordDir))
			skippedCount++
			continue
		}
		if os.Getenv("DEBUG_BATCH") != "" {
			fmt.Printf("  [DEBUG] Term is not fully processed, will process it\n")
		}

		if err := p.ProcessWordWithMeaning(entry.Hanzi, entry.Meaning); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Hanzi, err)
			errorCount++
			// Continue with next term
		} else {
			processedCount++
		}
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total terms: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	fmt.Printf("Skipped (already complete): %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("================================\n")

	return nil
}

// ProcessSingleWord processes a single term from the command line
func (p *Processor) ProcessSingleWord(term string) error {
	// Validate term
	if err := audio.ValidateChineseText(term); err != nil {
		return fmt.Errorf("invalid term '%s': %w", term, err)
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("\nProcessing: %s\n", term)
	return p.ProcessWordWithMeaning(term, "")
}

// ProcessWordWithMeaning processes a term with an optional provided meaning.
// The term's card directory collects word.txt, fields.txt, translation.txt
// and the pronunciation recording.
func (p *Processor) ProcessWordWithMeaning(term, providedMeaning string) error {
	wordDir := p.findOrCreateWordDirectory(term)

	n := note.New(noteFields...)
	if providedMeaning != "" {
		fmt.Printf("  Using provided meaning: %s\n", providedMeaning)
		n.Set("Meaning", providedMeaning)
	}
	n.Set("Hanzi", term)

	// Derive the dependent fields, writing audio into the card directory
	p.filler.SetAudioDir(wordDir)
	if _, err := p.filler.UpdateFields(context.Background(), n, "Hanzi"); err != nil {
		return fmt.Errorf("failed to fill fields: %w", err)
	}

	// Store the meaning for Anki export
	if meaning := n.Get("Meaning"); meaning != "" {
		p.translationCache.Add(term, meaning)

		// Check if translation file already exists
		translationFile := filepath.Join(wordDir, "translation.txt")
		if _, err := os.Stat(translationFile); os.IsNotExist(err) {
			if err := translation.SaveTranslation(wordDir, term, meaning); err != nil {
				fmt.Printf("  Warning: Failed to save translation: %v\n", err)
			}
		}
	} else {
		fmt.Printf("  Warning: no meaning found for '%s'\n", term)
	}

	if err := p.saveFields(wordDir, n); err != nil {
		return err
	}

	// Report the headline derivations
	if pinyin := n.Get("Pinyin"); pinyin != "" {
		fmt.Printf("  Pinyin: %s\n", pinyin)
	}
	if meaning := n.Get("Meaning"); meaning != "" {
		fmt.Printf("  Meaning: %s\n", meaning)
	}
	if sound := n.Get("Sound"); sound != "" {
		fmt.Printf("  Audio: %s\n", sound)
	}

	return nil
}

// saveFields writes the filled note to fields.txt, one "Name = value" line
// per non-empty field.
func (p *Processor) saveFields(wordDir string, n *note.Note) error {
	var b strings.Builder
	for _, field := range n.Fields() {
		value := n.Get(field)
		if value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s = %s\n", field, value)
	}

	fieldsFile := filepath.Join(wordDir, "fields.txt")
	if err := os.WriteFile(fieldsFile, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write fields file: %w", err)
	}

	return nil
}

// GenerateAnkiFile generates the Anki import file and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	// When --anki is used from CLI, save to home directory
	var outputDir string
	if p.flags.GenerateAnki {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		outputDir = homeDir
	} else {
		outputDir = p.flags.OutputDir
	}

	// Create Anki generator
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     filepath.Join(outputDir, "anki_import.csv"),
		MediaFolder:    p.flags.OutputDir,
		IncludeHeaders: true,
		AudioFormat:    p.flags.AudioFormat,
	})

	// Generate cards from output directory
	if err := gen.GenerateFromDirectory(p.flags.OutputDir); err != nil {
		return "", fmt.Errorf("failed to generate cards: %w", err)
	}

	// Fill meanings cached during this run into cards still missing one
	translations := p.translationCache.GetAll()
	cards := gen.GetCards()
	for i := range cards {
		if cards[i].Meaning == "" {
			if meaning, ok := translations[cards[i].Hanzi]; ok {
				cards[i].Meaning = meaning
			}
		}
	}

	var outputPath string
	if p.flags.AnkiCSV {
		// Generate CSV
		outputPath = filepath.Join(outputDir, "anki_import.csv")
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		// Generate APKG
		outputPath = filepath.Join(outputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	// Print stats
	total, withAudio := gen.Stats()
	fmt.Printf("  Generated %d cards (%d with audio)\n", total, withAudio)

	return outputPath, nil
}

// Helper methods

func (p *Processor) findOrCreateWordDirectory(term string) string {
	// Try to find existing directory first
	if dir := p.findCardDirectory(term); dir != "" {
		return dir
	}

	// No existing directory, create new one with card ID
	cardID := internal.GenerateCardID(term)
	wordDir := filepath.Join(p.flags.OutputDir, cardID)
	if err := os.MkdirAll(wordDir, 0755); err != nil {
		fmt.Printf("Warning: failed to create card directory: %v\n", err)
		return p.flags.OutputDir // Fallback to output directory
	}

	// Save term metadata
	metadataFile := filepath.Join(wordDir, "word.txt")
	if err := os.WriteFile(metadataFile, []byte(term), 0644); err != nil {
		fmt.Printf("Warning: failed to save term metadata: %v\n", err)
	}

	return wordDir
}

func (p *Processor) findCardDirectory(term string) string {
	entries, err := os.ReadDir(p.flags.OutputDir)
	if err != nil {
		return ""
	}

	// Look through all directories to find one with matching word.txt
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dirPath := filepath.Join(p.flags.OutputDir, entry.Name())
		wordFile := filepath.Join(dirPath, "word.txt")

		// Read the word file to check if it matches
		if data, err := os.ReadFile(wordFile); err == nil {
			storedTerm := strings.TrimSpace(string(data))
			if storedTerm == term {
				return dirPath
			}
		}
	}

	return ""
}

// audioFileName is the recording name the fill pipeline writes for term.
func (p *Processor) audioFileName(term string) string {
	return internal.SanitizeFilename(term) + "_" + p.flags.Locale + ".mp3"
}

// isWordFullyProcessed checks if a term has already been fully processed
func (p *Processor) isWordFullyProcessed(term string) bool {
	// Find the card directory
	wordDir := p.findCardDirectory(term)
	if wordDir == "" {
		return false // No directory exists
	}

	// Debug logging
	if os.Getenv("DEBUG_BATCH") != "" {
		fmt.Printf("  [DEBUG] Checking card directory: %s\n", wordDir)
	}

	// Check for required files
	requiredFiles := []string{
		"word.txt",   // Term metadata
		"fields.txt", // Derived note fields
	}

	// Check for the pronunciation recording (unless skipped)
	if !p.flags.NoAudio {
		audioFile := filepath.Join(wordDir, p.audioFileName(term))
		if _, err := os.Stat(audioFile); os.IsNotExist(err) {
			if os.Getenv("DEBUG_BATCH") != "" {
				fmt.Printf("  [DEBUG] No audio file found: %s\n", audioFile)
			}
			return false // No audio file found
		}
	}

	// Check all required files exist
	for _, file := range requiredFiles {
		filePath := filepath.Join(wordDir, file)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			if os.Getenv("DEBUG_BATCH") != "" {
				fmt.Printf("  [DEBUG] Required file missing: %s\n", filePath)
			}
			return false // Required file missing
		}
	}

	if os.Getenv("DEBUG_BATCH") != "" {
		fmt.Printf("  [DEBUG] All required files exist, term is fully processed\n")
	}
	return true // All required files exist
}
