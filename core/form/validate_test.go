package form_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/i18n"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("invalid email", func(t *testing.T) {
		res := form.Validate(form.Values{"email": "bad"}, form.Schema{
			{Name: "email", Rule: form.Rule{Required: true, Type: form.Email{}}},
		})
		assert.False(t, res.Valid)
		assert.Equal(t, map[string]string{"email": "Invalid email address"}, res.Errors)
	})

	t.Run("missing required uses label", func(t *testing.T) {
		res := form.Validate(form.Values{}, form.Schema{
			{Name: "name", Rule: form.Rule{Required: true, Label: "Name", Type: form.String{}}},
		})
		assert.False(t, res.Valid)
		assert.Equal(t, map[string]string{"name": "Name is required"}, res.Errors)
	})

	t.Run("missing required without label uses name", func(t *testing.T) {
		res := form.Validate(form.Values{"phone": ""}, form.Schema{
			{Name: "phone", Rule: form.Rule{Required: true, Type: form.Phone{}}},
		})
		assert.Equal(t, "phone is required", res.Errors["phone"])
	})

	t.Run("optional empty value is valid", func(t *testing.T) {
		res := form.Validate(form.Values{"website": ""}, form.Schema{
			{Name: "website", Rule: form.Rule{Type: form.URL{}}},
		})
		assert.True(t, res.Valid)
		assert.NotNil(t, res.Errors)
		assert.Empty(t, res.Errors)
	})

	t.Run("nil type only checks required and custom", func(t *testing.T) {
		res := form.Validate(form.Values{"notes": 12}, form.Schema{
			{Name: "notes", Rule: form.Rule{Required: true}},
		})
		assert.True(t, res.Valid)
	})
}

func TestValidateMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		kind  form.Kind
		label string
		want  string
	}{
		{"phone", "12-34", form.Phone{}, "", "Invalid phone number"},
		{"number without bounds", "abc", form.Number{}, "", "Invalid number"},
		{"number min", -1, form.Number{Min: form.Float(0)}, "", "Invalid number (min: 0)"},
		{"number max", 11, form.Number{Max: form.Float(10)}, "", "Invalid number (max: 10)"},
		{"number range", 100, form.Number{Min: form.Float(0.5), Max: form.Float(10)}, "", "Invalid number (min: 0.5)(max: 10)"},
		{"price", "1.999", form.Price{}, "", "Invalid price"},
		{"date", "2023-02-30", form.Date{}, "", "Invalid date"},
		{"string", "A", form.String{MinLength: 2, MaxLength: 50}, "Name", "Name must be between 2 and 50 characters"},
		{"string defaults", string(make([]byte, 300)), form.String{}, "Bio", "Bio must be between 1 and 255 characters"},
		{"username", "a b", form.Username{}, "", "Username must be 3-30 characters (letters, numbers, _ and -)"},
		{"password first message", "weak", form.Password{}, "", "Password must be at least 8 characters long"},
		{"password missing special", "Password1", form.Password{}, "", "Password must contain at least one special character"},
		{"url", "ftp://files.example.com", form.URL{}, "", "Invalid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := form.Validate(form.Values{"field": tt.value}, form.Schema{
				{Name: "field", Rule: form.Rule{Label: tt.label, Type: tt.kind}},
			})
			assert.False(t, res.Valid)
			assert.Equal(t, tt.want, res.Errors["field"])
		})
	}
}

func TestValidateValidValues(t *testing.T) {
	t.Parallel()

	schema := form.Schema{
		{Name: "email", Rule: form.Rule{Required: true, Type: form.Email{}}},
		{Name: "phone", Rule: form.Rule{Type: form.Phone{}}},
		{Name: "quantity", Rule: form.Rule{Type: form.Number{Min: form.Float(0), Max: form.Float(100)}}},
		{Name: "price", Rule: form.Rule{Type: form.Price{}}},
		{Name: "date", Rule: form.Rule{Type: form.Date{}}},
		{Name: "name", Rule: form.Rule{Type: form.String{MinLength: 2}}},
		{Name: "username", Rule: form.Rule{Type: form.Username{}}},
		{Name: "password", Rule: form.Rule{Type: form.Password{}}},
		{Name: "website", Rule: form.Rule{Type: form.URL{}}},
	}

	res := form.Validate(form.Values{
		"email":    "jane@shop.rw",
		"phone":    "078-123-4567",
		"quantity": "42",
		"price":    19.99,
		"date":     "2025-01-31",
		"name":     "Jane",
		"username": "jane_doe",
		"password": "Str0ng!Passw0rd",
		"website":  "https://shop.rw",
	}, schema)

	assert.True(t, res.Valid, res.Errors)
}

func TestValidateCustom(t *testing.T) {
	t.Parallel()

	match := func(v any, values form.Values) string {
		if s, _ := v.(string); s != values["password"] {
			return "Passwords do not match"
		}
		return ""
	}

	t.Run("cross-field check", func(t *testing.T) {
		schema := form.Schema{
			{Name: "password", Rule: form.Rule{Required: true}},
			{Name: "confirmPassword", Rule: form.Rule{Required: true, Custom: match}},
		}
		res := form.Validate(form.Values{"password": "a", "confirmPassword": "b"}, schema)
		assert.Equal(t, "Passwords do not match", res.Errors["confirmPassword"])

		res = form.Validate(form.Values{"password": "a", "confirmPassword": "a"}, schema)
		assert.True(t, res.Valid)
	})

	t.Run("custom message replaces type error", func(t *testing.T) {
		res := form.Validate(form.Values{"email": "bad"}, form.Schema{
			{Name: "email", Rule: form.Rule{
				Type:   form.Email{},
				Custom: func(any, form.Values) string { return "Use your work email" },
			}},
		})
		assert.Equal(t, map[string]string{"email": "Use your work email"}, res.Errors)
	})

	t.Run("empty custom result keeps type error", func(t *testing.T) {
		res := form.Validate(form.Values{"email": "bad"}, form.Schema{
			{Name: "email", Rule: form.Rule{
				Type:   form.Email{},
				Custom: func(any, form.Values) string { return "" },
			}},
		})
		assert.Equal(t, "Invalid email address", res.Errors["email"])
	})

	t.Run("custom key is translated", func(t *testing.T) {
		catalog, err := i18n.New(
			i18n.WithLanguages("en", "fr"),
			i18n.WithTranslations("en", form.Namespace, map[string]any{"work_email": "%{field} must be a work address"}),
			i18n.WithTranslations("fr", form.Namespace, map[string]any{"work_email": "%{field} doit être une adresse professionnelle"}),
		)
		require.NoError(t, err)

		schema := form.Schema{
			{Name: "email", Rule: form.Rule{
				Label:  "E-mail",
				Type:   form.Email{},
				Custom: func(any, form.Values) string { return "work_email" },
			}},
		}
		res := form.ValidateLocalized(form.Values{"email": "jane@gmail.com"}, schema, i18n.NewTranslator(catalog, "fr", form.Namespace))
		assert.Equal(t, "E-mail doit être une adresse professionnelle", res.Errors["email"])
	})

	t.Run("custom does not run on required failure", func(t *testing.T) {
		called := false
		res := form.Validate(form.Values{}, form.Schema{
			{Name: "terms", Rule: form.Rule{
				Required: true,
				Label:    "Terms",
				Custom:   func(any, form.Values) string { called = true; return "custom" },
			}},
		})
		assert.Equal(t, "Terms is required", res.Errors["terms"])
		assert.False(t, called)
	})
}

func TestIsFalsy(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	for _, v := range []any{nil, "", false, 0, 0.0, int64(0), uint8(0), math.NaN(), nilPtr} {
		assert.True(t, form.IsFalsy(v), "%#v", v)
	}
	for _, v := range []any{"0", " ", true, 1, -0.5, []string{}, map[string]any{}} {
		assert.False(t, form.IsFalsy(v), "%#v", v)
	}
}

func TestResultFirstInvalid(t *testing.T) {
	t.Parallel()

	schema := form.Schema{
		{Name: "username", Rule: form.Rule{Required: true}},
		{Name: "email", Rule: form.Rule{Required: true}},
		{Name: "phone", Rule: form.Rule{Required: true}},
	}
	res := form.Validate(form.Values{"username": "jane"}, schema)

	assert.Equal(t, "email", res.FirstInvalid(schema))
	assert.Empty(t, form.Result{}.FirstInvalid(schema))
}

func TestValidateLocalized(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.New(
		i18n.WithLanguages("en", "fr"),
		i18n.WithTranslations("en", form.Namespace, form.Messages()),
		i18n.WithTranslations("fr", form.Namespace, map[string]any{
			form.MsgRequired: "%{field} est obligatoire",
			form.MsgEmail:    "Adresse e-mail invalide",
		}),
	)
	require.NoError(t, err)
	tr := i18n.NewTranslator(catalog, "fr", form.Namespace)

	schema := form.Schema{
		{Name: "email", Rule: form.Rule{Required: true, Type: form.Email{}}},
		{Name: "name", Rule: form.Rule{Required: true, Label: "Nom"}},
		{Name: "phone", Rule: form.Rule{Type: form.Phone{}}},
	}
	res := form.ValidateLocalized(form.Values{"email": "bad", "phone": "1"}, schema, tr)

	assert.Equal(t, map[string]string{
		"email": "Adresse e-mail invalide",
		"name":  "Nom est obligatoire",
		"phone": "Invalid phone number",
	}, res.Errors)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	schema := form.Schema{
		{Name: "a", Rule: form.Rule{Required: true}},
		{Name: "b"},
	}
	assert.Equal(t, []string{"a", "b"}, schema.Names())
	require.NoError(t, schema.Check())

	rule, ok := schema.Rule("a")
	assert.True(t, ok)
	assert.True(t, rule.Required)
	_, ok = schema.Rule("missing")
	assert.False(t, ok)

	assert.ErrorIs(t, append(schema, form.Field{Name: "a"}).Check(), form.ErrInvalidSchema)
	assert.ErrorIs(t, form.Schema{{}}.Check(), form.ErrInvalidSchema)
	assert.Equal(t, form.TypeNumber, form.Number{}.FieldType())
}

func TestStringBounds(t *testing.T) {
	t.Parallel()

	minLen, maxLen := form.String{}.Bounds()
	assert.Equal(t, 1, minLen)
	assert.Equal(t, 255, maxLen)

	minLen, maxLen = form.String{MinLength: 3, MaxLength: 32}.Bounds()
	assert.Equal(t, 3, minLen)
	assert.Equal(t, 32, maxLen)
}
