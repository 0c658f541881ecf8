package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/validator"
)

const (
	// DefaultMaxBodySize caps JSON and url-encoded bodies.
	DefaultMaxBodySize int64 = 1 << 20

	// DefaultMaxMemory is the multipart memory budget; larger parts spill to disk.
	DefaultMaxMemory int64 = 10 << 20
)

// Upload is a file received in a multipart request.
type Upload struct {
	validator.File
	Header *multipart.FileHeader
}

// Open opens the uploaded content for reading.
func (u Upload) Open() (multipart.File, error) {
	return u.Header.Open()
}

// Payload is a decoded request body.
type Payload struct {
	Values form.Values
	Files  map[string][]Upload

	multipart *multipart.Form
}

// File returns the first upload for name, or nil.
func (p *Payload) File(name string) *Upload {
	if p == nil || len(p.Files[name]) == 0 {
		return nil
	}
	u := p.Files[name][0]
	return &u
}

// Close removes temporary files created while parsing a multipart body.
func (p *Payload) Close() error {
	if p == nil || p.multipart == nil {
		return nil
	}
	return p.multipart.RemoveAll()
}

type options struct {
	maxBodySize int64
	maxMemory   int64
}

// Option configures Bind.
type Option func(*options)

// WithMaxBodySize sets the limit for JSON and url-encoded bodies.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// WithMaxMemory sets the multipart memory budget.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// Bind decodes the request body into form values and uploads according to
// its Content-Type: application/json, application/x-www-form-urlencoded or
// multipart/form-data. A request without a body yields empty values.
// Callers must Close the payload when done with the uploads.
func Bind(r *http.Request, opts ...Option) (*Payload, error) {
	o := options{maxBodySize: DefaultMaxBodySize, maxMemory: DefaultMaxMemory}
	for _, opt := range opts {
		opt(&o)
	}

	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return &Payload{Values: form.Values{}}, nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json, application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		values, err := decodeValues(r, o.maxBodySize)
		if err != nil {
			return nil, err
		}
		return &Payload{Values: values}, nil
	case mediaType == "application/x-www-form-urlencoded":
		return bindURLEncoded(r, o.maxBodySize)
	case mediaType == "multipart/form-data":
		return bindMultipart(r, params["boundary"], o.maxMemory)
	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}
}
