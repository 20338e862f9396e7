package dict

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultSourceURL is the canonical CC-CEDICT export.
const DefaultSourceURL = "https://www.mdbg.net/chinese/export/cedict/cedict_1_0_ts_utf-8_mdbg.txt.gz"

// CantoSourceURL is the CC-Canto release carrying jyutping readings.
const CantoSourceURL = "https://cantonese.org/cccanto-webdist.zip"

// EnsureDictionary checks whether a compiled dictionary exists at dbPath.
// If not, it downloads the CC-CEDICT source from sourceURL, parses it and
// compiles the database.
func EnsureDictionary(dbPath, sourceURL string) error {
	if _, err := os.Stat(dbPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if sourceURL == "" {
		sourceURL = DefaultSourceURL
	}

	fmt.Printf("Dictionary not found at %s. Attempting auto-download...\n", dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create dictionary directory: %w", err)
	}

	sourcePath := dbPath + ".src"
	fmt.Printf("Downloading from %s...\n", sourceURL)
	if err := download(sourceURL, sourcePath); err != nil {
		return fmt.Errorf("failed to download dictionary: %w", err)
	}
	defer os.Remove(sourcePath)

	entries, stats, err := ParseFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to parse dictionary source: %w", err)
	}
	if stats.MalformedLines > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d malformed dictionary lines\n", stats.MalformedLines)
	}
	if len(entries) == 0 {
		return fmt.Errorf("dictionary source at %s contained no entries", sourceURL)
	}

	fmt.Printf("Compiling %d entries...\n", len(entries))
	if err := Compile(entries, dbPath); err != nil {
		return err
	}

	fmt.Printf("Dictionary ready at %s\n", dbPath)
	return nil
}

// download fetches url to destPath, decompressing a trailing gzip layer so
// ParseFile sees plain text regardless of how the mirror serves it.
func download(url, destPath string) error {
	client := &http.Client{Timeout: 5 * time.Minute}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "hanzirecall-cli")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	outFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, body); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}

// DefaultDatabasePath returns the per-user location of the compiled
// dictionary, honouring the HANZIRECALL_DICT override.
func DefaultDatabasePath() string {
	if env := os.Getenv("HANZIRECALL_DICT"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hanzirecall-dict.db"
	}
	return filepath.Join(home, ".hanzirecall", "dict.db")
}
