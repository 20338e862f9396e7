package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := DefaultGeneratorOptions()

	if opts.OutputPath != "anki_import.csv" {
		t.Errorf("Expected output path 'anki_import.csv', got '%s'", opts.OutputPath)
	}

	if opts.MediaFolder != "." {
		t.Errorf("Expected media folder '.', got '%s'", opts.MediaFolder)
	}

	if !opts.IncludeHeaders {
		t.Error("Expected IncludeHeaders to be true")
	}

	if opts.AudioFormat != "mp3" {
		t.Errorf("Expected audio format 'mp3', got '%s'", opts.AudioFormat)
	}
}

func TestNewGenerator(t *testing.T) {
	// Test with nil options
	gen := NewGenerator(nil)
	if gen == nil {
		t.Fatal("NewGenerator returned nil")
	}
	if gen.options == nil {
		t.Error("Generator options should not be nil")
	}

	// Test with custom options
	opts := &GeneratorOptions{
		OutputPath: "custom.csv",
	}
	gen = NewGenerator(opts)
	if gen.options.OutputPath != "custom.csv" {
		t.Errorf("Expected custom output path, got '%s'", gen.options.OutputPath)
	}
}

func TestAddCard(t *testing.T) {
	gen := NewGenerator(nil)

	card := Card{
		Hanzi:     "你好",
		AudioFile: "audio.mp3",
		Meaning:   "hello",
		Pinyin:    "nǐ hǎo",
	}

	gen.AddCard(card)

	if len(gen.cards) != 1 {
		t.Errorf("Expected 1 card, got %d", len(gen.cards))
	}

	if gen.cards[0].Hanzi != "你好" {
		t.Errorf("Expected Hanzi '你好', got '%s'", gen.cards[0].Hanzi)
	}
}

func TestGetCards(t *testing.T) {
	gen := NewGenerator(nil)

	card1 := Card{Hanzi: "你好"}
	card2 := Card{Hanzi: "貓"}

	gen.AddCard(card1)
	gen.AddCard(card2)

	cards := gen.GetCards()
	if len(cards) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards))
	}

	// Test that we can modify the returned slice
	cards[0].Meaning = "hello"
	if gen.cards[0].Meaning != "hello" {
		t.Error("GetCards should return the actual slice, not a copy")
	}
}

func TestFormatAudioField(t *testing.T) {
	gen := NewGenerator(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "simple audio file",
			input:    "audio.mp3",
			expected: "[sound:audio.mp3]",
		},
		{
			name:     "word-scoped recording with full path",
			input:    "/home/user/hanzirecall/你好/你好_zh-CN.mp3",
			expected: "[sound:你好_zh-CN.mp3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gen.formatAudioField(tt.input)
			if result != tt.expected {
				t.Errorf("formatAudioField(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGenerateCSV(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})

	// Add test cards
	gen.AddCard(Card{
		Hanzi:     "你好",
		Meaning:   "hello",
		Pinyin:    "nǐ hǎo",
		Color:     `<span class="tone3">你</span><span class="tone3">好</span>`,
		AudioFile: "/cards/你好/你好_zh-CN.mp3",
		Bopomofo:  "ㄋㄧˇ ㄏㄠˇ",
	})

	gen.AddCard(Card{
		Hanzi:       "书",
		Meaning:     "book",
		Pinyin:      "shū",
		Traditional: "書",
		AudioFile:   "/cards/书/书_zh-CN.mp3",
	})

	// Generate CSV
	err := gen.GenerateCSV()
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Fatal("CSV file was not created")
	}

	// Read and verify content
	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	// Check headers
	if len(records) < 1 {
		t.Fatal("CSV file is empty")
	}

	expectedHeaders := []string{"Hanzi", "Meaning", "Pinyin", "Color", "Audio", "Traditional", "Bopomofo"}
	if len(records[0]) != len(expectedHeaders) {
		t.Errorf("Expected %d columns, got %d", len(expectedHeaders), len(records[0]))
	}

	for i, header := range expectedHeaders {
		if records[0][i] != header {
			t.Errorf("Expected header '%s' at position %d, got '%s'", header, i, records[0][i])
		}
	}

	// Check first data row
	if len(records) < 2 {
		t.Fatal("CSV file has no data rows")
	}

	if records[1][0] != "你好" {
		t.Errorf("Expected Hanzi '你好', got '%s'", records[1][0])
	}

	if records[1][1] != "hello" {
		t.Errorf("Expected meaning 'hello', got '%s'", records[1][1])
	}

	if records[1][4] != "[sound:你好_zh-CN.mp3]" {
		t.Errorf("Expected audio field '[sound:你好_zh-CN.mp3]', got '%s'", records[1][4])
	}

	if records[2][5] != "書" {
		t.Errorf("Expected traditional '書', got '%s'", records[2][5])
	}
}

func TestGenerateCSVWithoutHeaders(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: false,
	})

	gen.AddCard(Card{
		Hanzi: "你好",
	})

	err := gen.GenerateCSV()
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	// Read and verify no headers
	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("Expected 1 record (no headers), got %d", len(records))
	}

	if records[0][0] != "你好" {
		t.Errorf("First field should be '你好', got '%s'", records[0][0])
	}
}

func TestGenerateFromDirectory(t *testing.T) {
	// Create test directory structure
	tempDir := t.TempDir()

	// Create word directories
	word1Dir := filepath.Join(tempDir, "你好")
	os.MkdirAll(word1Dir, 0755)

	word2Dir := filepath.Join(tempDir, "貓")
	os.MkdirAll(word2Dir, 0755)

	// Create hidden directory (should be skipped)
	hiddenDir := filepath.Join(tempDir, ".trashbin")
	os.MkdirAll(hiddenDir, 0755)

	// Word 1 with the full material set
	os.WriteFile(filepath.Join(word1Dir, "word.txt"), []byte("你好"), 0644)
	os.WriteFile(filepath.Join(word1Dir, "fields.txt"), []byte(
		"Hanzi = 你好\nMeaning = hello\nPinyin = nǐ hǎo\nBopomofo = ㄋㄧˇ ㄏㄠˇ\n"), 0644)
	os.WriteFile(filepath.Join(word1Dir, "你好_zh-CN.mp3"), []byte("audio data"), 0644)

	// Word 2 with a translation file only
	os.WriteFile(filepath.Join(word2Dir, "word.txt"), []byte("貓"), 0644)
	os.WriteFile(filepath.Join(word2Dir, "translation.txt"), []byte("貓 = cat"), 0644)
	os.WriteFile(filepath.Join(word2Dir, "貓_zh-CN.wav"), []byte("audio data"), 0644)

	// Hidden directory files (should be ignored)
	os.WriteFile(filepath.Join(hiddenDir, "word.txt"), []byte("hidden"), 0644)

	gen := NewGenerator(nil)
	err := gen.GenerateFromDirectory(tempDir)
	if err != nil {
		t.Fatalf("GenerateFromDirectory() error = %v", err)
	}

	// Check results
	if len(gen.cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(gen.cards))
	}

	var helloCard, catCard *Card
	for i := range gen.cards {
		switch gen.cards[i].Hanzi {
		case "你好":
			helloCard = &gen.cards[i]
		case "貓":
			catCard = &gen.cards[i]
		}
	}

	if helloCard == nil {
		t.Fatal("Could not find the 你好 card")
	}
	if helloCard.Meaning != "hello" {
		t.Errorf("Expected meaning 'hello', got '%s'", helloCard.Meaning)
	}
	if helloCard.Pinyin != "nǐ hǎo" {
		t.Errorf("Expected pinyin 'nǐ hǎo', got '%s'", helloCard.Pinyin)
	}
	if !strings.HasSuffix(helloCard.AudioFile, "你好_zh-CN.mp3") {
		t.Errorf("Expected audio file to end with '你好_zh-CN.mp3', got '%s'", helloCard.AudioFile)
	}

	if catCard == nil {
		t.Fatal("Could not find the 貓 card")
	}
	if catCard.Meaning != "cat" {
		t.Errorf("Expected meaning 'cat' from translation.txt, got '%s'", catCard.Meaning)
	}
	if !strings.HasSuffix(catCard.AudioFile, "貓_zh-CN.wav") {
		t.Errorf("Expected audio file to end with '貓_zh-CN.wav', got '%s'", catCard.AudioFile)
	}
}

func TestCopyMediaFile(t *testing.T) {
	tempDir := t.TempDir()

	// Create source file structure
	srcDir := filepath.Join(tempDir, "src", "你好")
	os.MkdirAll(srcDir, 0755)

	srcFile := filepath.Join(srcDir, "你好_zh-CN.mp3")
	os.WriteFile(srcFile, []byte("test audio"), 0644)

	// Create destination directory
	destDir := filepath.Join(tempDir, "dest")
	os.MkdirAll(destDir, 0755)

	gen := NewGenerator(nil)

	// Test copying file
	newPath, err := gen.copyMediaFile(srcFile, destDir)
	if err != nil {
		t.Fatalf("copyMediaFile() error = %v", err)
	}

	expectedName := "你好_zh-CN.mp3"
	if newPath != expectedName {
		t.Errorf("Expected filename '%s', got '%s'", expectedName, newPath)
	}

	// Verify file was copied
	destFile := filepath.Join(destDir, newPath)
	if _, err := os.Stat(destFile); os.IsNotExist(err) {
		t.Error("Destination file was not created")
	}

	// Verify content
	content, err := os.ReadFile(destFile)
	if err != nil {
		t.Fatalf("Failed to read destination file: %v", err)
	}

	if string(content) != "test audio" {
		t.Errorf("File content mismatch: got '%s', want 'test audio'", string(content))
	}

	// Test copying same file again (should create unique name)
	newPath2, err := gen.copyMediaFile(srcFile, destDir)
	if err != nil {
		t.Fatalf("copyMediaFile() second call error = %v", err)
	}

	if newPath2 == newPath {
		t.Error("Second copy should have unique name")
	}

	expectedName2 := "你好_zh-CN_1.mp3"
	if newPath2 != expectedName2 {
		t.Errorf("Expected filename '%s', got '%s'", expectedName2, newPath2)
	}
}

func TestStats(t *testing.T) {
	gen := NewGenerator(nil)

	// Empty stats
	total, audio := gen.Stats()
	if total != 0 || audio != 0 {
		t.Errorf("Expected empty stats, got total=%d, audio=%d", total, audio)
	}

	gen.AddCard(Card{
		Hanzi:     "你好",
		AudioFile: "audio1.mp3",
	})

	gen.AddCard(Card{
		Hanzi:   "貓",
		Meaning: "cat",
	})

	gen.AddCard(Card{
		Hanzi:     "狗",
		AudioFile: "audio2.mp3",
	})

	total, audio = gen.Stats()
	if total != 3 {
		t.Errorf("Expected 3 total cards, got %d", total)
	}

	if audio != 2 {
		t.Errorf("Expected 2 cards with audio, got %d", audio)
	}
}

func TestGeneratePackage(t *testing.T) {
	tempDir := t.TempDir()

	// Create source files
	srcDir := filepath.Join(tempDir, "src", "你好")
	os.MkdirAll(srcDir, 0755)

	audioFile := filepath.Join(srcDir, "你好_zh-CN.mp3")
	os.WriteFile(audioFile, []byte("audio data"), 0644)

	// Create generator with card
	gen := NewGenerator(nil)
	gen.AddCard(Card{
		Hanzi:     "你好",
		Meaning:   "hello",
		AudioFile: audioFile,
	})

	// Generate package
	outputDir := filepath.Join(tempDir, "output")
	err := gen.GeneratePackage(outputDir)
	if err != nil {
		t.Fatalf("GeneratePackage() error = %v", err)
	}

	// Verify structure
	mediaDir := filepath.Join(outputDir, "collection.media")
	if _, err := os.Stat(mediaDir); os.IsNotExist(err) {
		t.Error("Media directory was not created")
	}

	csvFile := filepath.Join(outputDir, "import.csv")
	if _, err := os.Stat(csvFile); os.IsNotExist(err) {
		t.Error("CSV file was not created")
	}

	// Verify media files were copied
	copiedAudio := filepath.Join(mediaDir, "你好_zh-CN.mp3")
	if _, err := os.Stat(copiedAudio); os.IsNotExist(err) {
		t.Error("Audio file was not copied")
	}
}
