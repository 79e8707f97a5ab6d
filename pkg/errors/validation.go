package errors

import (
	"strings"
	"unicode"
)

// MaxPromptLength is the longest prompt accepted by the pipeline.
const MaxPromptLength = 1000

// ValidatePrompt validates a free-text prompt before the pipeline runs.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only prompts
//   - Maximum length of MaxPromptLength characters
//   - No control characters (newlines and tabs are allowed)
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return New(ErrCodeInvalidPrompt, "prompt cannot be empty")
	}

	if len(prompt) > MaxPromptLength {
		return New(ErrCodeInvalidPrompt, "prompt too long (max %d characters)", MaxPromptLength)
	}

	for _, r := range prompt {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return New(ErrCodeInvalidPrompt, "prompt contains invalid control characters")
		}
	}

	return nil
}

// ValidateCanvasDim validates a single canvas dimension against the
// documented [200, 2000] range. The name parameter ("width" or "height") is
// used in the error message.
func ValidateCanvasDim(name string, v, min, max int) error {
	if v < min || v > max {
		return New(ErrCodeInvalidCanvas, "%s %d out of range [%d, %d]", name, v, min, max)
	}
	return nil
}
