// Package i18n provides message catalogs with namespaces, placeholder
// substitution and Accept-Language negotiation.
//
// # Catalogs
//
// Catalogs are loaded at construction time and the instance is immutable afterwards:
//
//	t, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithLanguages("en", "fr"),
//		i18n.WithTranslations("en", "validation", map[string]any{
//			"required": "%{field} is required",
//		}),
//		i18n.WithTranslations("fr", "validation", map[string]any{
//			"required": "%{field} est obligatoire",
//		}),
//	)
//
//	t.T("fr", "validation", "required", i18n.M{"field": "Email"}) // "Email est obligatoire"
//
// Nested maps are flattened into dot-separated keys ("password.min_length").
// Lookups fall back to the default language and finally return the key itself.
// WithMissingKeyHandler reports keys that resolved nowhere.
//
// # Translator
//
// A Translator fixes the language and namespace for repeated lookups:
//
//	tr := i18n.NewTranslator(t, "fr", "validation")
//	tr.T("required", i18n.M{"field": "Email"})
//
// # Language Negotiation
//
// Match and ParseAcceptLanguage use golang.org/x/text/language to pick the best
// configured language for an Accept-Language header, including regional
// fallbacks such as "fr-CA" to "fr".
package i18n
