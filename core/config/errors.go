package config

import "errors"

var (
	ErrNilConfig = errors.New("config: nil target")
	ErrParse     = errors.New("config: failed to parse environment")
)
