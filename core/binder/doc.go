// Package binder decodes HTTP request bodies into dynamic form values.
//
// Bind picks a decoder from the Content-Type header:
//
//   - application/json: the body must be a single JSON object. Numbers are
//     kept as json.Number so "19.90" style prices keep their decimals.
//   - application/x-www-form-urlencoded: single values become strings and
//     repeated keys become []string.
//   - multipart/form-data: values as above, plus uploaded files.
//
// Bodies are size-limited, trailing data after a JSON object is rejected and
// NUL bytes are stripped from every string. Further cleanup is left to the
// sanitizer package so multiline fields keep their line breaks.
//
// # Usage
//
//	p, err := binder.Bind(r)
//	if err != nil {
//		return response.Error(response.ErrBadRequest.WithError(err))
//	}
//	defer p.Close()
//
//	res := form.Validate(p.Values, schema)
//	if logo := p.File("logo"); logo != nil {
//		check := validator.ValidateFile(&logo.File, validator.FileOptions{})
//		_ = check
//	}
//
// Uploaded filenames are reduced to a safe base name before they are exposed.
//
// # Typed Bodies
//
// DecodeJSON decodes small fixed-shape requests into a struct, rejecting
// unknown fields:
//
//	var req struct {
//		Password string `json:"password"`
//	}
//	if err := binder.DecodeJSON(r, &req); err != nil {
//		return response.Error(response.ErrBadRequest.WithError(err))
//	}
//
// # Errors
//
// Failures wrap one of ErrMissingContentType, ErrUnsupportedMediaType,
// ErrFailedToParseJSON, ErrFailedToParseForm or ErrBodyTooLarge.
package binder
