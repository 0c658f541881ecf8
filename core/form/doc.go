// Package form validates field values against an ordered schema and drives the
// state of a single form: values, errors, touched fields and submission.
//
// # Schemas
//
// A Schema is an ordered list of fields. Each Rule picks at most one type-specific
// check through its Kind:
//
//	schema := form.Schema{
//		{Name: "email", Rule: form.Rule{Required: true, Type: form.Email{}}},
//		{Name: "name", Rule: form.Rule{Required: true, Label: "Name", Type: form.String{MinLength: 2, MaxLength: 50}}},
//		{Name: "quantity", Rule: form.Rule{Type: form.Number{Min: form.Float(0)}}},
//		{Name: "confirmPassword", Rule: form.Rule{
//			Required: true,
//			Custom: func(v any, values form.Values) string {
//				if v != values["password"] {
//					return "Passwords do not match"
//				}
//				return ""
//			},
//		}},
//	}
//
// # Validation
//
// Validate checks every field in order:
//
//  1. A required field with a falsy value (nil, "", false, 0, NaN) gets
//     "<label> is required" and nothing else runs for it.
//  2. An optional falsy value is valid.
//  3. The Kind check runs and sets its message on failure.
//  4. A non-empty Custom result replaces any message from step 3. It is looked
//     up as a message key first, so catalogs can localize it.
//
//	res := form.Validate(form.Values{"email": "bad"}, schema)
//	// res.Errors["email"] == "Invalid email address"
//
// Messages come from the "validation" i18n namespace. ValidateLocalized and
// WithTranslator accept any Translator; the English catalog is returned by Messages.
//
// # Form State
//
// Form wraps validation with UI state. Every mutation re-validates before it
// returns, and errors are only shown for touched fields:
//
//	f := form.New(form.Values{"email": ""}, schema, form.WithFocusHandler(focusInput))
//	f.HandleChange(form.ChangeEvent{Name: "email", Value: "jane@shop.rw"})
//	f.HandleBlur(form.BlurEvent{Name: "email"})
//
//	err := f.HandleSubmit(ctx, ev, func(ctx context.Context, v form.Values) error {
//		return api.CreateAccount(ctx, v)
//	})
//	var serr *form.SubmitError
//	switch {
//	case errors.As(err, &serr):
//		// invalid; focusInput already received serr.FirstInvalid
//	case errors.Is(err, form.ErrSubmitFailed):
//		// callback failed or panicked
//	}
//
// Only one submit runs at a time; a concurrent attempt returns ErrSubmitInProgress.
// The callback runs without holding the form lock, so it may read the form, but
// Custom functions must not call back into it.
package form
