package form

import (
	"github.com/emmydush/businessos/core/i18n"
	"github.com/emmydush/businessos/core/validator"
)

// Result is the outcome of validating values against a schema.
// Valid is true exactly when Errors is empty.
type Result struct {
	Valid  bool              `json:"isValid"`
	Errors map[string]string `json:"errors"`
}

// FirstInvalid returns the first field of schema that has an error, or "".
func (r Result) FirstInvalid(schema Schema) string {
	for _, f := range schema {
		if _, ok := r.Errors[f.Name]; ok {
			return f.Name
		}
	}
	return ""
}

// Validate checks values against schema with the English messages.
func Validate(values Values, schema Schema) Result {
	return ValidateLocalized(values, schema, defaultTranslator)
}

// ValidateLocalized checks values against schema and resolves messages through tr.
// A nil tr uses the English messages.
func ValidateLocalized(values Values, schema Schema, tr Translator) Result {
	if tr == nil {
		tr = defaultTranslator
	}

	errs := make(map[string]string)
	for _, f := range schema {
		if msg := ValidateField(f.Name, f.Rule, values, tr); msg != "" {
			errs[f.Name] = msg
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateField returns the error for a single field, or "" when it is valid.
//
// A required falsy value yields only the required message. A falsy optional
// value is valid. Otherwise the type check runs and a non-empty Custom result
// replaces its message.
func ValidateField(name string, rule Rule, values Values, tr Translator) string {
	if tr == nil {
		tr = defaultTranslator
	}

	value := values[name]
	if IsFalsy(value) {
		if rule.Required {
			return tr.T(MsgRequired, i18n.M{"field": rule.label(name)})
		}
		return ""
	}

	msg := typeError(name, rule, value, tr)
	if rule.Custom != nil {
		if custom := rule.Custom(value, values); custom != "" {
			msg = tr.T(custom, i18n.M{"field": rule.label(name)})
		}
	}
	return msg
}

func typeError(name string, rule Rule, value any, tr Translator) string {
	switch k := rule.Type.(type) {
	case nil:
		return ""
	case Email:
		if !validator.IsValidEmail(value) {
			return tr.T(MsgEmail)
		}
	case Phone:
		if !validator.IsValidPhone(value) {
			return tr.T(MsgPhone)
		}
	case Number:
		if !validator.IsValidNumber(value, validator.Range{Min: k.Min, Max: k.Max}) {
			return numberMessage(k, tr)
		}
	case Price:
		if !validator.IsValidPrice(value) {
			return tr.T(MsgPrice)
		}
	case Date:
		if !validator.IsValidDate(value) {
			return tr.T(MsgDate)
		}
	case String:
		minLen, maxLen := k.Bounds()
		if !validator.IsValidString(value, minLen, maxLen) {
			return tr.T(MsgString, i18n.M{"field": rule.label(name), "min": minLen, "max": maxLen})
		}
	case Username:
		if !validator.IsValidUsername(value) {
			return tr.T(MsgUsername)
		}
	case Password:
		s, ok := value.(string)
		if !ok {
			return tr.T(string(validator.RequirementMinLength), passwordPlaceholders())
		}
		if a := validator.ValidatePassword(s); !a.Valid {
			return tr.T(string(a.Failed[0]), passwordPlaceholders())
		}
	case URL:
		if !validator.IsValidURL(value) {
			return tr.T(MsgURL)
		}
	}
	return ""
}

func numberMessage(k Number, tr Translator) string {
	switch {
	case k.Min != nil && k.Max != nil:
		return tr.T(MsgNumberRange, i18n.M{"min": formatFloat(*k.Min), "max": formatFloat(*k.Max)})
	case k.Min != nil:
		return tr.T(MsgNumberMin, i18n.M{"min": formatFloat(*k.Min)})
	case k.Max != nil:
		return tr.T(MsgNumberMax, i18n.M{"max": formatFloat(*k.Max)})
	default:
		return tr.T(MsgNumber)
	}
}

// Bounds returns the effective length limits after defaults.
func (s String) Bounds() (minLen, maxLen int) {
	minLen, maxLen = s.MinLength, s.MaxLength
	if minLen <= 0 {
		minLen = validator.DefaultMinStringLength
	}
	if maxLen <= 0 {
		maxLen = validator.DefaultMaxStringLength
	}
	return minLen, maxLen
}
