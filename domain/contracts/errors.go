package contracts

import "errors"

// Common errors for domain contracts
var (
	// ErrSessionNotFound occurs when no state is stored for a session id, either
	// because it was never saved or because it expired and was pruned.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCorrupt occurs when stored session state cannot be decoded
	ErrSessionCorrupt = errors.New("session state unreadable")
)
