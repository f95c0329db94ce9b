package service

import "errors"

var (
	// ErrNotFound indicates no service exists with the given ID.
	ErrNotFound = errors.New("service not found")
	// ErrInvalidInput indicates invalid service input.
	ErrInvalidInput = errors.New("invalid service input")
	// ErrInvalidRecord indicates a stored record failed validation on load.
	ErrInvalidRecord = errors.New("invalid stored service record")
	// ErrInvalidImport indicates an import payload that is not a service array.
	ErrInvalidImport = errors.New("import payload is not a service array")
)
