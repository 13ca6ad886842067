package server

import "errors"

var (
	// ErrNotFound is returned when no toast has the requested ID.
	ErrNotFound = errors.New("server: toast not found")

	// ErrAlreadyRunning is returned when Run is called twice.
	ErrAlreadyRunning = errors.New("server: already running")
)
