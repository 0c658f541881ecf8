package form

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/emmydush/businessos/core/logger"
)

// Status is the lifecycle phase of a Form.
type Status int

const (
	// StatusClean means nothing was touched, changed or submitted since New or Reset.
	StatusClean Status = iota
	// StatusEditing means the user has interacted with the form.
	StatusEditing
	// StatusSubmitting means a submit callback is running.
	StatusSubmitting
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusEditing:
		return "editing"
	case StatusSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// ChangeEvent reports a new value for a field. Checkbox events carry Checked instead of Value.
type ChangeEvent struct {
	Name     string
	Value    any
	Checkbox bool
	Checked  bool
}

// BlurEvent reports that a field lost focus.
type BlurEvent struct {
	Name string
}

// State is a snapshot of a Form.
type State struct {
	Values      Values
	Errors      map[string]string
	Touched     map[string]bool
	Submitting  bool
	SubmitCount int
	Valid       bool
	Status      Status
}

// Form tracks values, validation errors, touched fields and submission
// state for one form instance. It is safe for concurrent use.
//
// Every mutation re-validates synchronously, so Errors always reflects the
// current values and schema. Errors are computed for every field but only
// displayed (VisibleErrors, FieldProps) once a field is touched.
type Form struct {
	mu sync.Mutex

	schema  Schema
	initial Values

	values      Values
	errors      map[string]string
	touched     map[string]bool
	submitting  bool
	submitCount int

	tr    Translator
	focus FocusFunc
	log   *slog.Logger
	name  string
}

// New creates a form seeded with a deep copy of initial.
func New(initial Values, schema Schema, opts ...Option) *Form {
	f := &Form{
		schema:  slices.Clone(schema),
		initial: initial.Clone(),
		touched: make(map[string]bool),
		tr:      defaultTranslator,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("form"), logger.Form(f.name))

	f.values = f.initial.Clone()
	f.revalidate()

	return f
}

// HandleChange stores the event value and marks the field touched.
func (f *Form) HandleChange(ev ChangeEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ev.Checkbox {
		f.values[ev.Name] = ev.Checked
	} else {
		f.values[ev.Name] = ev.Value
	}
	f.touched[ev.Name] = true
	f.revalidate()
}

// HandleBlur marks the field touched.
func (f *Form) HandleBlur(ev BlurEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.touched[ev.Name] = true
}

// SetValue sets a field value without touching it.
func (f *Form) SetValue(name string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[name] = value
	f.revalidate()
}

// SetValues merges partial into the current values without touching fields.
func (f *Form) SetValues(partial Values) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for k, v := range partial {
		f.values[k] = v
	}
	f.revalidate()
}

// SetSchema replaces the validation schema and re-validates.
func (f *Form) SetSchema(schema Schema) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.schema = slices.Clone(schema)
	f.revalidate()
}

// Reset restores the initial values and clears touched fields and submit state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = f.initial.Clone()
	f.touched = make(map[string]bool)
	f.submitting = false
	f.submitCount = 0
	f.revalidate()
}

// Values returns a deep copy of the current values.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.values.Clone()
}

// Errors returns the errors of every field, touched or not.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return maps.Clone(f.errors)
}

// VisibleErrors returns errors of touched fields only.
func (f *Form) VisibleErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	visible := make(map[string]string)
	for name, msg := range f.errors {
		if f.touched[name] {
			visible[name] = msg
		}
	}
	return visible
}

// Touched reports whether the field was changed, blurred or submitted.
func (f *Form) Touched(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.touched[name]
}

// IsValid reports whether the current values pass the schema.
func (f *Form) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.errors) == 0
}

// IsSubmitting reports whether a submit callback is running.
func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitting
}

// SubmitCount returns the number of submit attempts since New or Reset.
func (f *Form) SubmitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitCount
}

// CanSubmit reports whether the form is valid and not already submitting.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !f.submitting && len(f.errors) == 0
}

// IsDirty reports whether any value differs from the initial snapshot.
func (f *Form) IsDirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(changedFields(f.values, f.initial)) > 0
}

// DirtyFields returns the sorted names of fields that differ from the initial snapshot.
func (f *Form) DirtyFields() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	changed := changedFields(f.values, f.initial)
	slices.Sort(changed)
	return changed
}

// FirstInvalid returns the first field in schema order that has an error, or "".
func (f *Form) FirstInvalid() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.firstInvalidLocked()
}

// State returns a snapshot of the whole form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return State{
		Values:      f.values.Clone(),
		Errors:      maps.Clone(f.errors),
		Touched:     maps.Clone(f.touched),
		Submitting:  f.submitting,
		SubmitCount: f.submitCount,
		Valid:       len(f.errors) == 0,
		Status:      f.statusLocked(),
	}
}

func (f *Form) statusLocked() Status {
	switch {
	case f.submitting:
		return StatusSubmitting
	case len(f.touched) == 0 && f.submitCount == 0 && len(changedFields(f.values, f.initial)) == 0:
		return StatusClean
	default:
		return StatusEditing
	}
}

func (f *Form) revalidate() {
	f.errors = ValidateLocalized(f.values, f.schema, f.tr).Errors
}

func (f *Form) firstInvalidLocked() string {
	return Result{Errors: f.errors}.FirstInvalid(f.schema)
}
