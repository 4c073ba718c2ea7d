// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address has a plausible format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidateTone checks whether a tone is one of the recognized values.
// Empty is allowed; the composer defaults it to friendly.
func ValidateTone(tone string) bool {
	switch tone {
	case "", "friendly", "professional", "formal":
		return true
	}
	return false
}
