package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// US state code - two uppercase letters
	StatePattern = `^[A-Z]{2}$`

	// Zip code - 5 digits with optional 4-digit extension
	ZipPattern = `^\d{5}(-\d{4})?$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	State *regexp.Regexp
	Zip   *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	State: regexp.MustCompile(StatePattern),
	Zip:   regexp.MustCompile(ZipPattern),
}

// IsValidEmail reports whether the value matches the email pattern
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidState reports whether the value is a two-letter state code
func IsValidState(value string) bool {
	return CompiledPatterns.State.MatchString(value)
}

// IsValidZip reports whether the value is a 5 or 5+4 digit zip code
func IsValidZip(value string) bool {
	return CompiledPatterns.Zip.MatchString(value)
}

// IsValidPassword reports whether the password satisfies the minimum length
func IsValidPassword(value string) bool {
	return len(value) >= PasswordMinLength
}
