package middleware

import (
	"regexp"
	"strings"
)

// Input sanitization for submission fields before they reach prompt assembly.

var languageRx = regexp.MustCompile(`^[a-zA-Z0-9+#._ -]{1,32}$`)

// NormalizeLanguage lowercases and trims a language tag. The tag is
// free-form, but anything that fails the charset check is discarded so the
// caller falls back to the default instead of echoing junk into a prompt.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || !languageRx.MatchString(lang) {
		return ""
	}
	return lang
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
