package form

import (
	"maps"

	"github.com/emmydush/businessos/core/i18n"
	"github.com/emmydush/businessos/core/validator"
)

// Namespace is the i18n namespace holding validation messages.
const Namespace = "validation"

// Message keys in the validation namespace.
const (
	MsgRequired    = "required"
	MsgEmail       = "email"
	MsgPhone       = "phone"
	MsgNumber      = "number"
	MsgNumberMin   = "number_min"
	MsgNumberMax   = "number_max"
	MsgNumberRange = "number_range"
	MsgPrice       = "price"
	MsgDate        = "date"
	MsgString      = "string"
	MsgUsername    = "username"
	MsgURL         = "url"
)

// Translator resolves message keys in the validation namespace.
// *i18n.Translator satisfies it.
type Translator interface {
	T(key string, placeholders ...i18n.M) string
}

var englishMessages = map[string]any{
	MsgRequired:    "%{field} is required",
	MsgEmail:       "Invalid email address",
	MsgPhone:       "Invalid phone number",
	MsgNumber:      "Invalid number",
	MsgNumberMin:   "Invalid number (min: %{min})",
	MsgNumberMax:   "Invalid number (max: %{max})",
	MsgNumberRange: "Invalid number (min: %{min})(max: %{max})",
	MsgPrice:       "Invalid price",
	MsgDate:        "Invalid date",
	MsgString:      "%{field} must be between %{min} and %{max} characters",
	MsgUsername:    "Username must be 3-30 characters (letters, numbers, _ and -)",
	MsgURL:         "Invalid URL",
	"password": map[string]any{
		"min_length": "Password must be at least %{min} characters long",
		"max_length": "Password must be less than %{max} characters long",
		"lowercase":  "Password must contain at least one lowercase letter",
		"uppercase":  "Password must contain at least one uppercase letter",
		"number":     "Password must contain at least one number",
		"special":    "Password must contain at least one special character",
	},
	"file": map[string]any{
		"missing":   "No file provided",
		"size":      "File size must be less than %{max}MB",
		"type":      "File type must be one of: %{types}",
		"extension": "File extension must be one of: %{extensions}",
	},
}

var defaultTranslator = mustEnglishTranslator()

// Messages returns a copy of the built-in English catalog for the validation namespace.
func Messages() map[string]any {
	out := maps.Clone(englishMessages)
	for _, group := range []string{"password", "file"} {
		out[group] = maps.Clone(englishMessages[group].(map[string]any))
	}
	return out
}

// DefaultTranslator returns the English translator used when none is configured.
func DefaultTranslator() Translator {
	return defaultTranslator
}

func mustEnglishTranslator() *i18n.Translator {
	catalog, err := i18n.New(i18n.WithTranslations("en", Namespace, englishMessages))
	if err != nil {
		panic(err)
	}
	return i18n.NewTranslator(catalog, "en", Namespace)
}

func passwordPlaceholders() i18n.M {
	return i18n.M{"min": validator.MinPasswordLength, "max": validator.MaxPasswordLength}
}
