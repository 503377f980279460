package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Passport number pattern - 6 to 12 alphanumeric characters, uppercase
	PassportPattern = `^[A-Z0-9]{6,12}$`

	// Currency pattern - ISO 4217 alpha code
	CurrencyPattern = `^[A-Z]{3}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Passport *regexp.Regexp
	Currency *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Passport: regexp.MustCompile(PassportPattern),
	Currency: regexp.MustCompile(CurrencyPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(value)))
}

// IsValidPassportNumber reports whether the value is an acceptable passport number
func IsValidPassportNumber(value string) bool {
	return CompiledPatterns.Passport.MatchString(strings.ToUpper(strings.TrimSpace(value)))
}

// IsValidCurrency reports whether the value is a three-letter currency code
func IsValidCurrency(value string) bool {
	return CompiledPatterns.Currency.MatchString(strings.TrimSpace(value))
}

// IsValidName reports whether a person or entity name is within bounds
func IsValidName(value string) bool {
	n := len(strings.TrimSpace(value))
	return n >= NameMinLength && n <= NameMaxLength
}
