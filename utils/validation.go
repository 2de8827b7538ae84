// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError describes one failed request field. Validation failures
// return a list of these with a 400.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidatePhone checks if a phone number is a plausible mobile number
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Optional + prefix followed by 7-15 digits, or a local number with
	// a leading trunk zero (05xxxxxxxx)
	regex := `^\+?[0-9]\d{6,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateEmail checks basic email address shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// LengthBetween reports whether the trimmed string has a rune count in
// [min, max]. Rune count, not bytes: payloads are mostly Arabic.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= min && n <= max
}
