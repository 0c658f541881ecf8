package server

import "errors"

var (
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrMissingAddress       = errors.New("server address is required")
	ErrListen               = errors.New("failed to listen")
	ErrLoadTLS              = errors.New("failed to load TLS certificate")
)
