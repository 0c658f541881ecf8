package formd_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/app/formd"
	"github.com/emmydush/businessos/core/form"
)

func mustDef(t *testing.T, name string) formd.Definition {
	t.Helper()
	def, ok := formd.DefaultCatalog().Get(name)
	require.True(t, ok, name)
	return def
}

func validate(t *testing.T, def formd.Definition, values form.Values, lang string) form.Result {
	t.Helper()
	catalogI18n, err := formd.NewI18n("en")
	require.NoError(t, err)
	svc := formd.NewService(formd.DefaultCatalog(), catalogI18n)
	res, err := svc.Validate(def, values.Clone(), svc.Translator(lang))
	require.NoError(t, err)
	return res
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := formd.DefaultCatalog()
	names := make([]string, 0)
	for _, d := range c.All() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"registration", "customer", "product", "employee", "expense", "supplier"}, names)

	_, ok := c.Get("invoice")
	assert.False(t, ok)

	_, err := c.Lookup("invoice")
	assert.ErrorIs(t, err, formd.ErrUnknownForm)

	def, err := c.Lookup("expense")
	require.NoError(t, err)
	assert.Equal(t, "expense", def.Name)
}

func TestNewCatalogRejectsBadDefinitions(t *testing.T) {
	t.Parallel()

	schema := form.Schema{{Name: "email", Rule: form.Rule{Required: true, Type: form.Email{}}}}

	tests := []struct {
		name string
		defs []formd.Definition
	}{
		{"empty name", []formd.Definition{{Schema: schema}}},
		{"duplicate form", []formd.Definition{{Name: "a", Schema: schema}, {Name: "a", Schema: schema}}},
		{"duplicate field", []formd.Definition{{Name: "a", Schema: append(schema, schema...)}}},
		{"unknown sanitizer", []formd.Definition{{Name: "a", Schema: schema, Sanitize: map[string][]string{"email": {"rot13"}}}}},
		{"secret outside schema", []formd.Definition{{Name: "a", Schema: schema, Secret: []string{"password"}}}},
		{"unique outside schema", []formd.Definition{{Name: "a", Schema: schema, Unique: "phone"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formd.NewCatalog(tt.defs...)
			assert.ErrorIs(t, err, formd.ErrInvalidDefinition)
		})
	}
}

func TestRegistrationRules(t *testing.T) {
	t.Parallel()

	def := mustDef(t, "registration")
	valid := form.Values{
		"username":        "jane_doe",
		"email":           "jane@shop.rw",
		"password":        "Str0ng!Passw0rd",
		"confirmPassword": "Str0ng!Passw0rd",
		"businessName":    "Jane's Shop",
		"terms":           true,
	}
	assert.True(t, validate(t, def, valid, "en").Valid)

	t.Run("passwords must match", func(t *testing.T) {
		values := valid.Clone()
		values["confirmPassword"] = "Other!Passw0rd"
		res := validate(t, def, values, "en")
		assert.Equal(t, "Passwords do not match", res.Errors["confirmPassword"])
		assert.Equal(t, "Les mots de passe ne correspondent pas", validate(t, def, values, "fr").Errors["confirmPassword"])
	})

	t.Run("password longer than bcrypt accepts", func(t *testing.T) {
		values := valid.Clone()
		values["password"] = "Aa1!" + strings.Repeat("x", 96)
		values["confirmPassword"] = values["password"]

		res := validate(t, def, values, "en")
		assert.Equal(t, map[string]string{"password": "Password must be at most 72 bytes"}, res.Errors)
		assert.Equal(t, "Password ne doit pas dépasser 72 octets", validate(t, def, values, "fr").Errors["password"])
	})

	t.Run("terms accept checkbox encodings", func(t *testing.T) {
		for _, v := range []any{true, "on", "true"} {
			values := valid.Clone()
			values["terms"] = v
			assert.True(t, validate(t, def, values, "en").Valid, "%v", v)
		}

		values := valid.Clone()
		values["terms"] = "off"
		assert.Equal(t, "You must accept the terms and conditions", validate(t, def, values, "en").Errors["terms"])

		values["terms"] = false
		assert.Equal(t, "Terms is required", validate(t, def, values, "en").Errors["terms"])
	})
}

func TestEmployeeHireDate(t *testing.T) {
	t.Parallel()

	def := mustDef(t, "employee")
	values := form.Values{
		"firstName": "Jean",
		"lastName":  "Mugisha",
		"email":     "jean@shop.rw",
		"phone":     "0781234567",
		"position":  "Cashier",
		"hireDate":  "2023-04-01",
		"salary":    "350000",
	}
	assert.True(t, validate(t, def, values, "en").Valid)

	values["hireDate"] = time.Now().AddDate(0, 1, 0).Format(time.DateOnly)
	assert.Equal(t, "Hire date must be in the past", validate(t, def, values, "en").Errors["hireDate"])

	values["hireDate"] = "soon"
	assert.Equal(t, "Invalid date", validate(t, def, values, "en").Errors["hireDate"])
}

func TestProductSKU(t *testing.T) {
	t.Parallel()

	def := mustDef(t, "product")
	values := form.Values{"name": "Rice 5kg", "sku": "RICE-5KG", "price": "12.50"}
	assert.True(t, validate(t, def, values, "en").Valid)

	values["sku"] = " rice 5kg "
	assert.True(t, validate(t, def, values, "en").Valid, "spaces are removed and letters upper-cased")

	values["sku"] = "RICE_5KG"
	assert.Equal(t, "SKU may only contain letters, numbers and dashes", validate(t, def, values, "en").Errors["sku"])
	assert.Equal(t, "Le SKU ne peut contenir que des lettres, des chiffres et des tirets", validate(t, def, values, "fr").Errors["sku"])
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	d := formd.Describe(mustDef(t, "expense"))
	assert.Equal(t, "expense", d.Name)
	require.Len(t, d.Fields, 5)

	amount := d.Fields[1]
	assert.Equal(t, "amount", amount.Name)
	assert.Equal(t, "price", amount.Type)
	require.NotNil(t, amount.Min)
	assert.Zero(t, *amount.Min)

	description := d.Fields[0]
	assert.Equal(t, 3, description.MinLength)
	assert.Equal(t, 255, description.MaxLength)

	receipt := d.Fields[4]
	assert.Equal(t, "file", receipt.Type)
	assert.True(t, receipt.Required)
	assert.Equal(t, int64(10<<20), receipt.MaxSize)
	assert.Contains(t, receipt.Accept, ".pdf")

	reg := formd.Describe(mustDef(t, "registration"))
	assert.Equal(t, 8, reg.Fields[2].MinLength)
	assert.Equal(t, 128, reg.Fields[2].MaxLength)
	assert.True(t, reg.Fields[3].Custom)
	assert.Empty(t, reg.Fields[3].Type)
}
