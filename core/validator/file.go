package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxFileSize is the upload limit applied when FileOptions.MaxSize is zero.
const DefaultMaxFileSize int64 = 5 << 20

var (
	defaultAllowedTypes      = []string{"image/jpeg", "image/png", "image/jpg"}
	defaultAllowedExtensions = []string{".jpg", ".jpeg", ".png"}
)

// File describes an uploaded file without holding its content.
type File struct {
	Name string
	Size int64
	Type string
}

// FileOptions restricts accepted uploads. Zero fields fall back to the defaults:
// 5 MiB, JPEG/PNG MIME types and .jpg/.jpeg/.png extensions.
type FileOptions struct {
	MaxSize           int64
	AllowedTypes      []string
	AllowedExtensions []string
}

// FileCheck identifies one file rule. Values double as translation keys.
type FileCheck string

const (
	FileCheckMissing   FileCheck = "file.missing"
	FileCheckSize      FileCheck = "file.size"
	FileCheckType      FileCheck = "file.type"
	FileCheckExtension FileCheck = "file.extension"
)

// FileResult lists one message per failed file check. Errors and Failed are parallel.
type FileResult struct {
	Valid  bool        `json:"isValid"`
	Errors []string    `json:"errors"`
	Failed []FileCheck `json:"-"`
}

func (o FileOptions) withDefaults() FileOptions {
	if o.MaxSize <= 0 {
		o.MaxSize = DefaultMaxFileSize
	}
	if len(o.AllowedTypes) == 0 {
		o.AllowedTypes = defaultAllowedTypes
	}
	if len(o.AllowedExtensions) == 0 {
		o.AllowedExtensions = defaultAllowedExtensions
	}
	return o
}

// Placeholders returns the effective limits for file messages: max (in MB),
// types and extensions.
func (o FileOptions) Placeholders() map[string]any {
	o = o.withDefaults()
	return map[string]any{
		"max":        strconv.FormatFloat(float64(o.MaxSize)/(1<<20), 'f', -1, 64),
		"types":      strings.Join(o.AllowedTypes, ", "),
		"extensions": strings.Join(o.AllowedExtensions, ", "),
	}
}

// ValidateFile checks size, MIME type and filename extension. A nil file yields
// a single "No file provided" error.
func ValidateFile(f *File, opts FileOptions) FileResult {
	if f == nil {
		return FileResult{Errors: []string{"No file provided"}, Failed: []FileCheck{FileCheckMissing}}
	}
	opts = opts.withDefaults()
	args := opts.Placeholders()

	var res FileResult
	fail := func(check FileCheck, msg string) {
		res.Failed = append(res.Failed, check)
		res.Errors = append(res.Errors, msg)
	}
	if f.Size > opts.MaxSize {
		fail(FileCheckSize, fmt.Sprintf("File size must be less than %sMB", args["max"]))
	}
	if !hasAllowedType(f.Type, opts.AllowedTypes) {
		fail(FileCheckType, fmt.Sprintf("File type must be one of: %s", args["types"]))
	}
	if !hasAllowedExtension(f.Name, opts.AllowedExtensions) {
		fail(FileCheckExtension, fmt.Sprintf("File extension must be one of: %s", args["extensions"]))
	}

	res.Valid = len(res.Errors) == 0
	return res
}

func hasAllowedType(contentType string, allowed []string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.TrimSpace(mediaType)
	for _, t := range allowed {
		if strings.EqualFold(mediaType, t) {
			return true
		}
	}
	return false
}

func hasAllowedExtension(name string, allowed []string) bool {
	name = strings.ToLower(name)
	for _, ext := range allowed {
		if strings.HasSuffix(name, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
