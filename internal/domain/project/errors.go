package project

import "errors"

var (
	// ErrNotFound indicates no project exists with the given ID.
	ErrNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidRecord indicates a stored record failed validation on load.
	ErrInvalidRecord = errors.New("invalid stored project record")
	// ErrInvalidStatus indicates an unknown status value.
	ErrInvalidStatus = errors.New("invalid project status")
)
