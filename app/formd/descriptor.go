package formd

import (
	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/validator"
)

// FieldDescriptor is the wire shape of one field, enough for a client to
// mirror the server-side rules.
type FieldDescriptor struct {
	Name      string   `json:"name"`
	Type      string   `json:"type,omitempty"`
	Label     string   `json:"label"`
	Required  bool     `json:"required"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MinLength int      `json:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty"`
	MaxSize   int64    `json:"maxSize,omitempty"`
	Accept    []string `json:"accept,omitempty"`
	Custom    bool     `json:"custom,omitempty"`
}

// Descriptor describes a form definition.
type Descriptor struct {
	Name   string            `json:"name"`
	Title  string            `json:"title"`
	Fields []FieldDescriptor `json:"fields"`
}

// Summary is a catalog listing entry.
type Summary struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Fields int    `json:"fields"`
	Files  int    `json:"files,omitempty"`
}

// Describe renders d for clients. File fields follow the schema fields.
func Describe(d Definition) Descriptor {
	fields := make([]FieldDescriptor, 0, len(d.Schema)+len(d.Files))
	for _, f := range d.Schema {
		fields = append(fields, describeField(f))
	}
	for _, f := range d.Files {
		opts := f.Options
		if opts.MaxSize <= 0 {
			opts.MaxSize = validator.DefaultMaxFileSize
		}
		accept := opts.AllowedExtensions
		if len(accept) == 0 {
			accept = []string{".jpg", ".jpeg", ".png"}
		}
		fields = append(fields, FieldDescriptor{
			Name:     f.Name,
			Type:     "file",
			Label:    f.Label,
			Required: f.Required,
			MaxSize:  opts.MaxSize,
			Accept:   accept,
		})
	}
	return Descriptor{Name: d.Name, Title: d.Title, Fields: fields}
}

func describeField(f form.Field) FieldDescriptor {
	fd := FieldDescriptor{
		Name:     f.Name,
		Label:    f.Rule.Label,
		Required: f.Rule.Required,
		Custom:   f.Rule.Custom != nil,
	}
	if fd.Label == "" {
		fd.Label = f.Name
	}
	if f.Rule.Type == nil {
		return fd
	}

	fd.Type = string(f.Rule.Type.FieldType())
	switch k := f.Rule.Type.(type) {
	case form.Number:
		fd.Min, fd.Max = k.Min, k.Max
	case form.Price:
		fd.Min = form.Float(0)
	case form.String:
		fd.MinLength, fd.MaxLength = k.Bounds()
	case form.Username:
		fd.MinLength, fd.MaxLength = 3, 30
	case form.Password:
		fd.MinLength, fd.MaxLength = validator.MinPasswordLength, validator.MaxPasswordLength
	}
	return fd
}

// Summaries lists every form in c.
func Summaries(c *Catalog) []Summary {
	defs := c.All()
	out := make([]Summary, len(defs))
	for i, d := range defs {
		out[i] = Summary{Name: d.Name, Title: d.Title, Fields: len(d.Schema), Files: len(d.Files)}
	}
	return out
}
