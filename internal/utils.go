package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
	"unicode"
)

// GenerateCardID creates a unique ID for a card based on timestamp and headword
// Format: epochMillis_md5(term)[:8]
func GenerateCardID(term string) string {
	now := time.Now()
	epochMillis := now.UnixNano() / 1000000

	hash := md5.Sum([]byte(term))
	hashStr := hex.EncodeToString(hash[:])[:8] // Use first 8 chars of MD5

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string. Han characters are
// kept so card directories stay recognisable.
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isFilenameSafe(r) {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

func isFilenameSafe(r rune) bool {
	if r == '-' || r == '_' {
		return true
	}
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
		return true
	}
	return unicode.Is(unicode.Han, r)
}
