package team

import "errors"

var (
	// ErrNotFound indicates no team member exists with the given ID.
	ErrNotFound = errors.New("team member not found")
	// ErrInvalidInput indicates invalid team member input.
	ErrInvalidInput = errors.New("invalid team member input")
	// ErrInvalidRecord indicates a stored record failed validation on load.
	ErrInvalidRecord = errors.New("invalid stored team member record")
	// ErrInvalidImport indicates an import payload without a members array.
	ErrInvalidImport = errors.New("import payload is not a team bundle")
)
