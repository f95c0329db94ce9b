package client

import "errors"

var (
	// ErrNotFound indicates no client exists with the given ID.
	ErrNotFound = errors.New("client not found")
	// ErrInvalidInput indicates invalid client input.
	ErrInvalidInput = errors.New("invalid client input")
	// ErrInvalidRecord indicates a stored record failed validation on load.
	ErrInvalidRecord = errors.New("invalid stored client record")
)
