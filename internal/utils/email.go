package utils

import "strings"

// NormalizeEmail converts an email address to its canonical stored form:
// trimmed of surrounding whitespace and lowercased. The function is
// idempotent; storage and lookup must always use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
