// Package validator provides the field-level predicates behind BusinessOS forms:
// email, phone, number, price, date, username, URL, password and file checks.
//
// Every predicate is a pure function that takes the raw field value as `any`,
// so it can be fed straight from decoded JSON, url-encoded forms or typed Go values.
// Non-matching types are simply invalid; nothing panics.
//
// # Field Predicates
//
//	validator.IsValidEmail("jane@shop.rw")              // true
//	validator.IsValidPhone("078-123-4567")              // true, separators are ignored
//	validator.IsValidNumber("42", validator.Between(1, 100))
//	validator.IsValidPrice("19.99")                     // true, at most two decimals
//	validator.IsValidUsername("jane_doe")               // true
//	validator.IsValidURL("https://businessos.app")      // true, http and https only
//
// # Dates and Clocks
//
// IsFutureDate and IsPastDate compare against time.Now. Tests and callers that
// need a fixed clock use the At variants:
//
//	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
//	validator.IsPastDateAt("2024-12-31", now) // true
//
// # Passwords
//
// ValidatePassword collects one message per unmet rule in a fixed order
// (length, lowercase, uppercase, number, special) and scores the password:
//
//	a := validator.ValidatePassword("Str0ng!Passw0rd")
//	a.Valid    // true
//	a.Strength // validator.StrengthVeryStrong
//
// The score adds one point each for length >= 8, length >= 12, mixed case,
// a digit and a special character. Scores up to 2 are weak, 3 medium,
// 4 strong and 5 very-strong.
//
// # Files
//
// ValidateFile checks size, MIME type and extension and reports one message
// per failed check:
//
//	res := validator.ValidateFile(&validator.File{Name: "logo.gif", Size: 1024, Type: "image/gif"}, validator.FileOptions{})
//	res.Errors // type and extension messages
//	res.Failed // FileCheckType, FileCheckExtension; keys for localized messages
package validator
