// Package sanitizer cleans user-supplied strings before they are validated or stored.
//
// # Free Text
//
// SanitizeInput trims the value, removes '<' and '>', strips "javascript:"
// (case-insensitive) and removes inline handler prefixes like "onerror=":
//
//	sanitizer.SanitizeInput(`  <b onclick=alert(1)>hi</b> `) // "b alert(1)hi/b"
//
// It is a best-effort filter. It is NOT a security boundary against XSS:
// templates must encode output and the server must validate every submission.
//
// # Named Sanitizers
//
// Sanitizers are registered by name so form definitions can declare them per field:
//
//	clean, err := sanitizer.Apply("  Jane@Shop.RW ", "trim", "email")
//	// clean == "jane@shop.rw"
//
// Built-in names: trim, lower, upper, trim_lower, single_line, collapse_spaces,
// no_spaces, no_control, strip_html, digits, email, phone, filename, user_input,
// text, multiline.
// "max:N" truncates to N runes. Custom sanitizers are added with Register.
//
// SanitizeValues applies a per-field plan to decoded form values:
//
//	err := sanitizer.SanitizeValues(values, map[string][]string{
//		"email":        {"email"},
//		"businessName": {"text", "max:120"},
//	})
package sanitizer
