package i18n

import (
	"fmt"
	"maps"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n holds message catalogs for several languages and namespaces.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	defaultLang string

	// Default language first, others sorted
	languages []string
	matcher   language.Matcher

	missingKeyHandler func(lang, namespace, key string)
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	i.languages = i.buildLanguagesList()
	i.matcher = newMatcher(i.languages)

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the supported languages.
// The default language is always included and placed first; the rest are sorted.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) == 0 {
			return nil
		}

		langSet := make(map[string]bool)
		for _, lang := range langs {
			if lang != "" {
				langSet[lang] = true
			}
		}
		delete(langSet, i.defaultLang)

		others := make([]string, 0, len(langSet))
		for lang := range langSet {
			others = append(others, lang)
		}
		sort.Strings(others)

		i.languages = append([]string{i.defaultLang}, others...)
		return nil
	}
}

// WithMissingKeyHandler sets a function called when a key is missing in both
// the requested and the default language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithTranslations loads a catalog for one language and namespace.
// Nested maps are flattened into dot-separated keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}

		for key, value := range flattenTranslations(translations, "") {
			i.translations[buildKey(lang, namespace, key)] = value
		}
		return nil
	}
}

// T retrieves a translation for the given language, namespace, and key.
// Falls back to the default language and finally returns the key itself.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	if translation, ok := i.lookup(lang, namespace, key); ok {
		return replacePlaceholdersWithMerge(translation, placeholders...)
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}

	return key
}

// Has reports whether key resolves in lang or in the default language.
func (i *I18n) Has(lang, namespace, key string) bool {
	_, ok := i.lookup(lang, namespace, key)
	return ok
}

// Languages returns the configured languages, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default language code.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Match picks the best configured language for an Accept-Language header value.
func (i *I18n) Match(acceptLanguage string) string {
	return matchLanguage(i.matcher, acceptLanguage, i.languages)
}

func (i *I18n) lookup(lang, namespace, key string) (string, bool) {
	if translation, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return translation, true
	}
	if lang != i.defaultLang {
		if translation, ok := i.translations[buildKey(i.defaultLang, namespace, key)]; ok {
			return translation, true
		}
	}
	return "", false
}

func (i *I18n) buildLanguagesList() []string {
	if len(i.languages) > 0 {
		return i.languages
	}
	return []string{i.defaultLang}
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

// flattenTranslations recursively flattens a nested map into dot-notation keys.
func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	if len(placeholders) == 0 {
		return template
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}

	return ReplacePlaceholders(template, merged)
}
