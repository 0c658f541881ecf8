package form

import (
	"fmt"
	"strconv"
)

// FieldType names a validation kind on the wire.
type FieldType string

const (
	TypeEmail    FieldType = "email"
	TypePhone    FieldType = "phone"
	TypeNumber   FieldType = "number"
	TypePrice    FieldType = "price"
	TypeDate     FieldType = "date"
	TypeString   FieldType = "string"
	TypeUsername FieldType = "username"
	TypePassword FieldType = "password"
	TypeURL      FieldType = "url"
)

// Kind is the type-specific check of a Rule. The set of kinds is closed:
// Email, Phone, Number, Price, Date, String, Username, Password and URL.
type Kind interface {
	FieldType() FieldType
	isKind()
}

type (
	Email    struct{}
	Phone    struct{}
	Price    struct{}
	Date     struct{}
	Username struct{}
	Password struct{}
	URL      struct{}
)

// Number accepts finite numbers within the optional inclusive bounds.
type Number struct {
	Min *float64
	Max *float64
}

// String bounds the trimmed length in runes. Zero values fall back to 1 and 255.
type String struct {
	MinLength int
	MaxLength int
}

func (Email) FieldType() FieldType    { return TypeEmail }
func (Phone) FieldType() FieldType    { return TypePhone }
func (Number) FieldType() FieldType   { return TypeNumber }
func (Price) FieldType() FieldType    { return TypePrice }
func (Date) FieldType() FieldType     { return TypeDate }
func (String) FieldType() FieldType   { return TypeString }
func (Username) FieldType() FieldType { return TypeUsername }
func (Password) FieldType() FieldType { return TypePassword }
func (URL) FieldType() FieldType      { return TypeURL }

func (Email) isKind()    {}
func (Phone) isKind()    {}
func (Number) isKind()   {}
func (Price) isKind()    {}
func (Date) isKind()     {}
func (String) isKind()   {}
func (Username) isKind() {}
func (Password) isKind() {}
func (URL) isKind()      {}

// Float returns a pointer to v, for Number bounds.
func Float(v float64) *float64 {
	return &v
}

// CustomFunc is a cross-field check. A non-empty return value is the field's error
// and replaces any type error. It is resolved as a key in the validation
// namespace with a "field" placeholder; text that is not a key is used as is.
// values must not be modified.
type CustomFunc func(value any, values Values) string

// Rule describes how one field is validated.
type Rule struct {
	Required bool
	Label    string
	Type     Kind
	Custom   CustomFunc
}

// Field binds a Rule to a field name.
type Field struct {
	Name string
	Rule Rule
}

// Schema is an ordered list of field rules. Order decides which invalid field
// is reported first on submit.
type Schema []Field

// Names returns the field names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Rule returns the rule declared for name.
func (s Schema) Rule(name string) (Rule, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Rule, true
		}
	}
	return Rule{}, false
}

// Check reports empty or duplicated field names.
func (s Schema) Check() error {
	seen := make(map[string]struct{}, len(s))
	for i, f := range s {
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidSchema, i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

func (r Rule) label(name string) string {
	if r.Label != "" {
		return r.Label
	}
	return name
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
