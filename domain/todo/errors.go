package todo

import "errors"

// Lookup errors. Callers branch on these; an unknown id is an expected outcome
// (stale bookmark, tampered path, already deleted entity).
var (
	ErrListNotFound = errors.New("the specified list was not found")
	ErrItemNotFound = errors.New("the specified todo was not found")
)

// Validation error kinds, matched with errors.Is against a *ValidationError.
var (
	ErrNameLength    = errors.New("name length out of range")
	ErrDuplicateName = errors.New("name already in use")
)
