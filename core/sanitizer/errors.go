package sanitizer

import "errors"

// ErrUnknownSanitizer is returned by Apply for names missing from the registry.
var ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")
