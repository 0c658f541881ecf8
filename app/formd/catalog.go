package formd

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"

	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/sanitizer"
	"github.com/emmydush/businessos/core/validator"
)

// FileField declares an upload accepted by a form.
type FileField struct {
	Name     string
	Label    string
	Required bool
	Options  validator.FileOptions
}

// Definition is a named form the service validates and stores.
type Definition struct {
	Name   string
	Title  string
	Schema form.Schema
	// Sanitize maps field names to sanitizer names applied before validation.
	Sanitize map[string][]string
	Files    []FileField
	// Secret fields are bcrypt-hashed before persistence.
	Secret []string
	// Transient fields are validated but never persisted.
	Transient []string
	// Unique names a field whose value may appear once per form.
	Unique string
}

func (d Definition) check() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if err := d.Schema.Check(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, d.Name, err)
	}
	for field, names := range d.Sanitize {
		for _, n := range names {
			if !sanitizer.Exists(n) {
				return fmt.Errorf("%w: %s.%s: unknown sanitizer %q", ErrInvalidDefinition, d.Name, field, n)
			}
		}
	}
	for _, name := range slices.Concat(d.Secret, d.Transient, []string{d.Unique}) {
		if name == "" {
			continue
		}
		if _, ok := d.Schema.Rule(name); !ok {
			return fmt.Errorf("%w: %s: field %q is not in the schema", ErrInvalidDefinition, d.Name, name)
		}
	}
	return nil
}

// Catalog is an immutable set of form definitions.
type Catalog struct {
	defs   []Definition
	byName map[string]int
}

// NewCatalog validates defs and indexes them by name.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{defs: defs, byName: make(map[string]int, len(defs))}
	for i, d := range defs {
		if err := d.check(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate form %q", ErrInvalidDefinition, d.Name)
		}
		c.byName[d.Name] = i
	}
	return c, nil
}

// Get returns the definition registered under name.
func (c *Catalog) Get(name string) (Definition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Lookup is Get with ErrUnknownForm for missing names.
func (c *Catalog) Lookup(name string) (Definition, error) {
	def, ok := c.Get(name)
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return def, nil
}

// All returns the definitions in registration order.
func (c *Catalog) All() []Definition {
	return slices.Clone(c.defs)
}

// DefaultCatalog returns the BusinessOS forms.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		registrationForm(),
		customerForm(),
		productForm(),
		employeeForm(),
		expenseForm(),
		supplierForm(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

var skuRegex = regexp.MustCompile(`^[A-Z0-9-]+$`)

func registrationForm() Definition {
	return Definition{
		Name:  "registration",
		Title: "Create your business account",
		Schema: form.Schema{
			{Name: "username", Rule: form.Rule{Required: true, Label: "Username", Type: form.Username{}}},
			{Name: "email", Rule: form.Rule{Required: true, Label: "Email", Type: form.Email{}}},
			{Name: "password", Rule: form.Rule{Required: true, Label: "Password", Type: form.Password{}}},
			{Name: "confirmPassword", Rule: form.Rule{Required: true, Label: "Confirm password", Custom: matchField("password", MsgPasswordMismatch)}},
			{Name: "businessName", Rule: form.Rule{Required: true, Label: "Business name", Type: form.String{MinLength: 2, MaxLength: 100}}},
			{Name: "phone", Rule: form.Rule{Label: "Phone", Type: form.Phone{}}},
			{Name: "website", Rule: form.Rule{Label: "Website", Type: form.URL{}}},
			{Name: "terms", Rule: form.Rule{Required: true, Label: "Terms", Custom: checked(MsgTermsRequired)}},
		},
		Sanitize: map[string][]string{
			"username":     {"trim"},
			"email":        {"email"},
			"businessName": {"text", "max:100"},
			"phone":        {"trim"},
			"website":      {"trim"},
		},
		Secret:    []string{"password"},
		Transient: []string{"confirmPassword"},
		Unique:    "email",
	}
}

func customerForm() Definition {
	return Definition{
		Name:  "customer",
		Title: "Customer",
		Schema: form.Schema{
			{Name: "name", Rule: form.Rule{Required: true, Label: "Name", Type: form.String{MinLength: 2, MaxLength: 100}}},
			{Name: "email", Rule: form.Rule{Required: true, Label: "Email", Type: form.Email{}}},
			{Name: "phone", Rule: form.Rule{Label: "Phone", Type: form.Phone{}}},
			{Name: "address", Rule: form.Rule{Label: "Address", Type: form.String{MaxLength: 255}}},
			{Name: "notes", Rule: form.Rule{Label: "Notes", Type: form.String{MaxLength: 1000}}},
		},
		Sanitize: map[string][]string{
			"name":    {"text"},
			"email":   {"email"},
			"phone":   {"trim"},
			"address": {"text"},
			"notes":   {"multiline"},
		},
	}
}

func productForm() Definition {
	return Definition{
		Name:  "product",
		Title: "Product",
		Schema: form.Schema{
			{Name: "name", Rule: form.Rule{Required: true, Label: "Product name", Type: form.String{MinLength: 2, MaxLength: 100}}},
			{Name: "sku", Rule: form.Rule{Required: true, Label: "SKU", Type: form.String{MinLength: 3, MaxLength: 32}, Custom: pattern(skuRegex, MsgSKUFormat)}},
			{Name: "price", Rule: form.Rule{Required: true, Label: "Price", Type: form.Price{}}},
			{Name: "quantity", Rule: form.Rule{Label: "Quantity", Type: form.Number{Min: form.Float(0)}}},
			{Name: "category", Rule: form.Rule{Label: "Category", Type: form.String{MaxLength: 50}}},
			{Name: "description", Rule: form.Rule{Label: "Description", Type: form.String{MaxLength: 2000}}},
		},
		Sanitize: map[string][]string{
			"name":        {"text"},
			"sku":         {"no_spaces", "upper"},
			"category":    {"text"},
			"description": {"multiline"},
		},
		Files: []FileField{
			{Name: "image", Label: "Product image"},
		},
	}
}

func employeeForm() Definition {
	return Definition{
		Name:  "employee",
		Title: "Employee",
		Schema: form.Schema{
			{Name: "firstName", Rule: form.Rule{Required: true, Label: "First name", Type: form.String{MinLength: 2, MaxLength: 50}}},
			{Name: "lastName", Rule: form.Rule{Required: true, Label: "Last name", Type: form.String{MinLength: 2, MaxLength: 50}}},
			{Name: "email", Rule: form.Rule{Required: true, Label: "Email", Type: form.Email{}}},
			{Name: "phone", Rule: form.Rule{Required: true, Label: "Phone", Type: form.Phone{}}},
			{Name: "position", Rule: form.Rule{Required: true, Label: "Position", Type: form.String{MinLength: 2, MaxLength: 100}}},
			{Name: "hireDate", Rule: form.Rule{Required: true, Label: "Hire date", Type: form.Date{}, Custom: pastDate(MsgHireDatePast)}},
			{Name: "salary", Rule: form.Rule{Required: true, Label: "Salary", Type: form.Price{}}},
		},
		Sanitize: map[string][]string{
			"firstName": {"text"},
			"lastName":  {"text"},
			"email":     {"email"},
			"phone":     {"trim"},
			"position":  {"text"},
			"hireDate":  {"trim"},
		},
	}
}

func expenseForm() Definition {
	return Definition{
		Name:  "expense",
		Title: "Expense",
		Schema: form.Schema{
			{Name: "description", Rule: form.Rule{Required: true, Label: "Description", Type: form.String{MinLength: 3, MaxLength: 255}}},
			{Name: "amount", Rule: form.Rule{Required: true, Label: "Amount", Type: form.Price{}}},
			{Name: "date", Rule: form.Rule{Required: true, Label: "Date", Type: form.Date{}}},
			{Name: "category", Rule: form.Rule{Required: true, Label: "Category", Type: form.String{MaxLength: 50}}},
		},
		Sanitize: map[string][]string{
			"description": {"text"},
			"date":        {"trim"},
			"category":    {"text"},
		},
		Files: []FileField{
			{
				Name:     "receipt",
				Label:    "Receipt",
				Required: true,
				Options: validator.FileOptions{
					MaxSize:           10 << 20,
					AllowedTypes:      []string{"application/pdf", "image/jpeg", "image/png"},
					AllowedExtensions: []string{".pdf", ".jpg", ".jpeg", ".png"},
				},
			},
		},
	}
}

func supplierForm() Definition {
	return Definition{
		Name:  "supplier",
		Title: "Supplier",
		Schema: form.Schema{
			{Name: "companyName", Rule: form.Rule{Required: true, Label: "Company name", Type: form.String{MinLength: 2, MaxLength: 100}}},
			{Name: "contactName", Rule: form.Rule{Label: "Contact name", Type: form.String{MaxLength: 100}}},
			{Name: "email", Rule: form.Rule{Required: true, Label: "Email", Type: form.Email{}}},
			{Name: "phone", Rule: form.Rule{Required: true, Label: "Phone", Type: form.Phone{}}},
			{Name: "website", Rule: form.Rule{Label: "Website", Type: form.URL{}}},
		},
		Sanitize: map[string][]string{
			"companyName": {"text"},
			"contactName": {"text"},
			"email":       {"email"},
			"phone":       {"trim"},
			"website":     {"trim"},
		},
	}
}

func matchField(other, msg string) form.CustomFunc {
	return func(value any, values form.Values) string {
		if !reflect.DeepEqual(value, values[other]) {
			return msg
		}
		return ""
	}
}

// checked accepts JSON true and the usual HTML checkbox encodings.
func checked(msg string) form.CustomFunc {
	return func(value any, _ form.Values) string {
		switch v := value.(type) {
		case bool:
			if v {
				return ""
			}
		case string:
			switch v {
			case "on", "true", "1", "yes":
				return ""
			}
		}
		return msg
	}
}

func pattern(re *regexp.Regexp, msg string) form.CustomFunc {
	return func(value any, _ form.Values) string {
		s, ok := value.(string)
		if !ok || !re.MatchString(s) {
			return msg
		}
		return ""
	}
}

func pastDate(msg string) form.CustomFunc {
	return func(value any, _ form.Values) string {
		if validator.IsValidDate(value) && !validator.IsPastDate(value) {
			return msg
		}
		return ""
	}
}
