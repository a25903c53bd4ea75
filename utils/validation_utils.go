package utils

import (
	"regexp"
	"strings"
)

// MinPasswordLength is the shortest password accepted on a password change.
const MinPasswordLength = 6

// phoneRegex accepts digits with optional leading +, spaces, dashes, dots
// and parentheses, 7 to 20 characters.
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,18}[0-9]$`)

// IsValidName reports whether a display name has at least two characters
// after trimming.
func IsValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

// IsValidPhone reports whether a string looks like a phone number.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// IsValidEmail is a light shape check; real verification happens out of band.
func IsValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	at := strings.Index(trimmed, "@")
	if at < 1 || at == len(trimmed)-1 {
		return false
	}
	return strings.Contains(trimmed[at+1:], ".")
}
