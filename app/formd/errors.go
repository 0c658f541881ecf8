package formd

import "errors"

var (
	ErrInvalidDefinition = errors.New("invalid form definition")
	ErrUnknownForm       = errors.New("unknown form")
	ErrDuplicate         = errors.New("duplicate submission")
	ErrStoreFailed       = errors.New("failed to store submission")
	ErrUploadFailed      = errors.New("failed to store upload")
	ErrHashFailed        = errors.New("failed to hash secret field")
)
