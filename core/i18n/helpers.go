package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage returns the entry of available that best matches the
// Accept-Language header. Quality values and regional fallbacks ("fr-CA" to "fr")
// are honoured. Empty, malformed or unmatched headers return available[0].
//
// Example header: "en-US,en;q=0.9,fr;q=0.8"
// Available: ["fr", "en"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	return matchLanguage(newMatcher(available), header, available)
}

func newMatcher(available []string) language.Matcher {
	tags := make([]language.Tag, len(available))
	for idx, lang := range available {
		tags[idx] = language.Make(lang)
	}
	return language.NewMatcher(tags)
}

func matchLanguage(m language.Matcher, header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	header = strings.TrimSpace(header)
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	_, idx, confidence := m.Match(desired...)
	if confidence == language.No || idx < 0 || idx >= len(available) {
		return available[0]
	}
	return available[idx]
}

// ReplacePlaceholders replaces %{name} placeholders in template with values
// from placeholders. Unknown placeholders are left unchanged.
//
// Example:
//
//	template: "%{field} must be between %{min} and %{max} characters"
//	placeholders: M{"field": "Name", "min": 2, "max": 50}
//	returns: "Name must be between 2 and 50 characters"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 || !strings.Contains(template, "%{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "%{"+key+"}", fmt.Sprintf("%v", value))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
