package batch

import (
	"fmt"
	"os"
	"strings"
)

// WordEntry represents a vocabulary term with an optional meaning override
type WordEntry struct {
	Hanzi   string
	Meaning string
}

// ReadBatchFile reads terms from a file and returns WordEntry slice
// Supports formats:
// - Term only: "你好" (meaning comes from the dictionary or translator)
// - With meaning: "你好 = hello" (provided meaning wins over the lookup)
func ReadBatchFile(filename string) ([]WordEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []WordEntry
	lines := string(content)

	for _, line := range splitLines(lines) {
		if line = trimSpace(line); line != "" {
			// Check if line contains '=' for the meaning override format
			if strings.Contains(line, "=") {
				parts := strings.SplitN(line, "=", 2)
				hanzi := strings.TrimSpace(parts[0])
				meaning := strings.TrimSpace(parts[1])

				// Ignore lines without a term
				if hanzi != "" {
					entries = append(entries, WordEntry{
						Hanzi:   hanzi,
						Meaning: meaning,
					})
				}
			} else {
				// Just a term - meaning filled during processing
				entries = append(entries, WordEntry{
					Hanzi: line,
				})
			}
		}
	}

	return entries, nil
}

// splitLines splits a string by newlines
func splitLines(s string) []string {
	var lines []string
	current := ""
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current)
			current = ""
		} else if r != '\r' {
			current += string(r)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// trimSpace trims whitespace from string
func trimSpace(s string) string {
	start := 0
	end := len(s)

	// Trim from start
	for start < end && isSpace(rune(s[start])) {
		start++
	}

	// Trim from end
	for end > start && isSpace(rune(s[end-1])) {
		end--
	}

	return s[start:end]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
