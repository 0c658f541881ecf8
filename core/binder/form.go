package binder

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/sanitizer"
	"github.com/emmydush/businessos/core/validator"
)

const maxBoundaryLength = 70

func bindURLEncoded(r *http.Request, limit int64) (*Payload, error) {
	body, err := readBody(r, limit)
	if err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
	}

	parsed, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
	}

	return &Payload{Values: valuesFromForm(parsed)}, nil
}

func bindMultipart(r *http.Request, boundary string, maxMemory int64) (*Payload, error) {
	if !validateBoundary(boundary) {
		return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
	}

	mf := r.MultipartForm
	p := &Payload{Values: valuesFromForm(mf.Value), multipart: mf}
	if len(mf.File) > 0 {
		p.Files = make(map[string][]Upload, len(mf.File))
		for name, headers := range mf.File {
			uploads := make([]Upload, 0, len(headers))
			for _, fh := range headers {
				uploads = append(uploads, newUpload(fh))
			}
			p.Files[name] = uploads
		}
	}
	return p, nil
}

func newUpload(fh *multipart.FileHeader) Upload {
	fh.Filename = sanitizer.SanitizeFilename(fh.Filename)
	return Upload{
		File: validator.File{
			Name: fh.Filename,
			Size: fh.Size,
			Type: fh.Header.Get("Content-Type"),
		},
		Header: fh,
	}
}

// valuesFromForm keeps single values as strings and repeated keys as []string.
func valuesFromForm(src map[string][]string) form.Values {
	values := make(form.Values, len(src))
	for k, vs := range src {
		switch len(vs) {
		case 0:
		case 1:
			values[k] = strings.ReplaceAll(vs[0], "\x00", "")
		default:
			out := make([]string, len(vs))
			for i, v := range vs {
				out[i] = strings.ReplaceAll(v, "\x00", "")
			}
			values[k] = out
		}
	}
	return values
}

// validateBoundary rejects boundaries that would break multipart parsing.
func validateBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > maxBoundaryLength {
		return false
	}
	return !strings.ContainsAny(boundary, "\x00\r\n")
}
