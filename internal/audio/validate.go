package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateChineseText validates that the input text contains Chinese text
func ValidateChineseText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	hasHan := false
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			hasHan = true
			break
		}
	}

	if !hasHan {
		return fmt.Errorf("text must contain Chinese characters")
	}

	return nil
}
