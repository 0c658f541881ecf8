package sanitizer

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":            Trim,
		"lower":           ToLower,
		"upper":           ToUpper,
		"trim_lower":      TrimToLower,
		"single_line":     SingleLine,
		"collapse_spaces": RemoveExtraWhitespace,
		"no_spaces":       RemoveWhitespace,
		"no_control":      RemoveControlChars,
		"strip_html":      StripHTML,
		"digits":          KeepDigits,
		"email":           NormalizeEmail,
		"phone":           NormalizePhone,
		"filename":        SanitizeFilename,
		"user_input":      SanitizeInput,

		// Composite sanitizers for common form fields
		"text": func(s string) string {
			return SanitizeInput(RemoveExtraWhitespace(s))
		},
		"multiline": func(s string) string {
			return SanitizeInput(RemoveControlChars(s))
		},
	}
)

// Register adds a custom sanitizer function to the registry.
func Register(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Exists reports whether a sanitizer with the given name is registered.
// "max:N" is always accepted for positive N.
func Exists(name string) bool {
	if _, ok := parseMax(name); ok {
		return true
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Apply runs the named sanitizers over s in order. "max:N" truncates to N runes.
// Unknown names return ErrUnknownSanitizer and leave s untouched.
func Apply(s string, names ...string) (string, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := s
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if n, ok := parseMax(name); ok {
			result = MaxLength(result, n)
			continue
		}
		fn, ok := registry[name]
		if !ok {
			return s, fmt.Errorf("%w: %s", ErrUnknownSanitizer, name)
		}
		result = fn(result)
	}

	return result, nil
}

// SanitizeValues applies plan to the string values of values in place.
// Fields missing from values and non-string values are skipped; string slices
// are sanitized element by element.
func SanitizeValues(values map[string]any, plan map[string][]string) error {
	for field, names := range plan {
		switch v := values[field].(type) {
		case string:
			out, err := Apply(v, names...)
			if err != nil {
				return fmt.Errorf("field %s: %w", field, err)
			}
			values[field] = out
		case []string:
			out := make([]string, len(v))
			for i, s := range v {
				sanitized, err := Apply(s, names...)
				if err != nil {
					return fmt.Errorf("field %s: %w", field, err)
				}
				out[i] = sanitized
			}
			values[field] = out
		}
	}
	return nil
}

func parseMax(name string) (int, bool) {
	raw, ok := strings.CutPrefix(name, "max:")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
