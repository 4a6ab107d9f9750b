package validation

import (
	"errors"
	"strings"
)

// ValidateUsername validates username format: 3-30 characters, letters,
// digits, dots, dashes and underscores only.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		return errors.New("username is required")
	}

	if len(trimmed) < 3 {
		return errors.New("username must be at least 3 characters")
	}

	if len(trimmed) > 30 {
		return errors.New("username is too long (max 30 characters)")
	}

	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_':
		default:
			return errors.New("username may only contain letters, digits, dots, dashes and underscores")
		}
	}

	return nil
}
