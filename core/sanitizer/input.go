package sanitizer

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	javascriptSchemeRegex = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex     = regexp.MustCompile(`(?i)on\w+=`)
	filenameUnsafeRegex   = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// SanitizeInput trims s and removes angle brackets, "javascript:" schemes and
// inline event handler prefixes such as "onclick=".
//
// This is a best-effort filter for free-text fields. It is not an XSS defence:
// rendered output must still be encoded and the value must still be validated.
func SanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = javascriptSchemeRegex.ReplaceAllString(s, "")
	s = eventHandlerRegex.ReplaceAllString(s, "")
	return s
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(s string) string {
	return TrimToLower(s)
}

// NormalizePhone keeps the digits of a phone number and a leading plus sign.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	digits := KeepDigits(s)
	if strings.HasPrefix(s, "+") && digits != "" {
		return "+" + digits
	}
	return digits
}

// SanitizeFilename returns a safe base name: directories are dropped and every
// run of characters outside [A-Za-z0-9._-] becomes a single underscore.
func SanitizeFilename(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), `\`, "/")
	s = filepath.Base(s)
	s = filenameUnsafeRegex.ReplaceAllString(s, "_")
	s = strings.TrimLeft(s, ".")
	if s == "" || s == "_" {
		return "file"
	}
	return s
}
