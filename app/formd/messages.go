package formd

import (
	"maps"

	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/i18n"
)

// Catalog message keys in the validation namespace.
const (
	MsgPasswordMismatch = "passwords_mismatch"
	MsgTermsRequired    = "terms_required"
	MsgSKUFormat        = "sku_format"
	MsgHireDatePast     = "hire_date_past"
	MsgSecretTooLong    = "secret_too_long"
)

var englishMessages = map[string]any{
	MsgPasswordMismatch: "Passwords do not match",
	MsgTermsRequired:    "You must accept the terms and conditions",
	MsgSKUFormat:        "SKU may only contain letters, numbers and dashes",
	MsgHireDatePast:     "Hire date must be in the past",
	MsgSecretTooLong:    "%{field} must be at most %{max} bytes",
}

var frenchMessages = map[string]any{
	form.MsgRequired:    "%{field} est obligatoire",
	form.MsgEmail:       "Adresse e-mail invalide",
	form.MsgPhone:       "Numéro de téléphone invalide",
	form.MsgNumber:      "Nombre invalide",
	form.MsgNumberMin:   "Nombre invalide (min : %{min})",
	form.MsgNumberMax:   "Nombre invalide (max : %{max})",
	form.MsgNumberRange: "Nombre invalide (min : %{min})(max : %{max})",
	form.MsgPrice:       "Prix invalide",
	form.MsgDate:        "Date invalide",
	form.MsgString:      "%{field} doit contenir entre %{min} et %{max} caractères",
	form.MsgUsername:    "Le nom d'utilisateur doit contenir 3 à 30 caractères (lettres, chiffres, _ et -)",
	form.MsgURL:         "URL invalide",
	"password": map[string]any{
		"min_length": "Le mot de passe doit contenir au moins %{min} caractères",
		"max_length": "Le mot de passe doit contenir moins de %{max} caractères",
		"lowercase":  "Le mot de passe doit contenir au moins une lettre minuscule",
		"uppercase":  "Le mot de passe doit contenir au moins une lettre majuscule",
		"number":     "Le mot de passe doit contenir au moins un chiffre",
		"special":    "Le mot de passe doit contenir au moins un caractère spécial",
	},
	"file": map[string]any{
		"missing":   "Aucun fichier fourni",
		"size":      "La taille du fichier doit être inférieure à %{max} Mo",
		"type":      "Le type de fichier doit être l'un de : %{types}",
		"extension": "L'extension du fichier doit être l'une de : %{extensions}",
	},
	MsgPasswordMismatch: "Les mots de passe ne correspondent pas",
	MsgTermsRequired:    "Vous devez accepter les conditions générales",
	MsgSKUFormat:        "Le SKU ne peut contenir que des lettres, des chiffres et des tirets",
	MsgHireDatePast:     "La date d'embauche doit être dans le passé",
	MsgSecretTooLong:    "%{field} ne doit pas dépasser %{max} octets",
}

// NewI18n builds the service catalog with English and French validation messages.
func NewI18n(defaultLang string) (*i18n.I18n, error) {
	if defaultLang == "" {
		defaultLang = i18n.DefaultLang
	}
	en := form.Messages()
	maps.Copy(en, englishMessages)

	return i18n.New(
		i18n.WithDefaultLanguage(defaultLang),
		i18n.WithLanguages("en", "fr"),
		i18n.WithTranslations("en", form.Namespace, en),
		i18n.WithTranslations("fr", form.Namespace, frenchMessages),
	)
}
