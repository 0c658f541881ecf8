package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/emmydush/businessos/core/form"
)

func readBody(r *http.Request, limit int64) ([]byte, error) {
	// Fail fast on a request whose context is already done.
	if err := r.Context().Err(); err != nil {
		return nil, err
	}

	// Read limit+1 bytes to detect oversized bodies.
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}

// decodeValues decodes a JSON object into form values. Numbers are kept as
// json.Number so prices keep their decimal representation.
func decodeValues(r *http.Request, limit int64) (form.Values, error) {
	body, err := readBody(r, limit)
	if err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var values form.Values
	if err := decodeStrict(dec, &values); err != nil {
		return nil, err
	}
	if values == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrFailedToParseJSON)
	}

	for k, v := range values {
		values[k] = stripNUL(v)
	}
	return values, nil
}

// DecodeJSON decodes a JSON request body into v, rejecting unknown fields
// and trailing data.
func DecodeJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, _ := strings.Cut(contentType, ";")
	if strings.TrimSpace(mediaType) != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	body, err := readBody(r, DefaultMaxBodySize)
	if err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return decodeStrict(dec, v)
}

func decodeStrict(dec *json.Decoder, v any) error {
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}
	return nil
}

// stripNUL removes NUL bytes from strings at any depth.
func stripNUL(v any) any {
	switch t := v.(type) {
	case string:
		return strings.ReplaceAll(t, "\x00", "")
	case []any:
		for i := range t {
			t[i] = stripNUL(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = stripNUL(t[k])
		}
		return t
	default:
		return v
	}
}
