package utils

import (
	"strings"

	apperrors "promptlink/internal/errors"
)

// MaxPromptLength is measured in UTF-16 code units, the unit browser
// clients count string length in, so both ends agree on the limit.
const MaxPromptLength = 5000

// UTF16Length counts UTF-16 code units: astral-plane runes count as two.
func UTF16Length(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func ValidatePrompt(prompt string) error {
	if prompt == "" {
		return apperrors.NewValidationError("prompt", "Prompt is required")
	}

	if strings.TrimSpace(prompt) == "" {
		return apperrors.NewValidationError("prompt", "Prompt cannot be empty")
	}

	if UTF16Length(prompt) > MaxPromptLength {
		return apperrors.NewValidationError("prompt", "Prompt is too long (max 5000 characters)")
	}

	return nil
}
