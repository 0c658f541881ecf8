package binder

import "errors"

var (
	// ErrUnsupportedMediaType indicates a Content-Type the binder cannot decode.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrMissingContentType indicates a request with a body but no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")

	// ErrFailedToParseJSON indicates invalid JSON, a non-object document or trailing data.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseForm indicates malformed url-encoded or multipart data.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrBodyTooLarge indicates the body exceeded the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
