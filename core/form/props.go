package form

// FieldProps carries what an input needs to render and report events.
// Error, Invalid and DescribedBy are set only for touched fields with an error.
type FieldProps struct {
	Name        string
	Value       any
	OnChange    func(value any)
	OnBlur      func()
	Error       string
	Invalid     bool
	DescribedBy string
}

// FieldProps returns the props for the named field. A missing value is "".
func (f *Form) FieldProps(name string) FieldProps {
	f.mu.Lock()
	defer f.mu.Unlock()

	value := f.values[name]
	if value == nil {
		value = ""
	}

	props := FieldProps{
		Name:  name,
		Value: cloneValue(value),
		OnChange: func(v any) {
			f.HandleChange(ChangeEvent{Name: name, Value: v})
		},
		OnBlur: func() {
			f.HandleBlur(BlurEvent{Name: name})
		},
	}

	if msg, ok := f.errors[name]; ok && f.touched[name] {
		props.Error = msg
		props.Invalid = true
		props.DescribedBy = ErrorID(name)
	}

	return props
}

// ErrorID returns the element id of a field's error message.
func ErrorID(name string) string {
	return name + "-error"
}
