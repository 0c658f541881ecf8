package form

import "log/slog"

// Option configures a Form.
type Option func(*Form)

// FocusFunc receives the first invalid field after a rejected submit.
type FocusFunc func(field string)

// WithLogger sets the logger used for submit outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithTranslator sets the translator for validation messages.
func WithTranslator(tr Translator) Option {
	return func(f *Form) {
		if tr != nil {
			f.tr = tr
		}
	}
}

// WithFocusHandler sets the hook that moves focus to the first invalid field.
func WithFocusHandler(fn FocusFunc) Option {
	return func(f *Form) {
		f.focus = fn
	}
}

// WithName sets the form name attached to log records.
func WithName(name string) Option {
	return func(f *Form) {
		f.name = name
	}
}
