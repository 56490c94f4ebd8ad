package repositories

import (
	"fmt"

	"todolists/domain/contracts"
)

// ErrCorruptSession occurs when a stored session row cannot be decoded.
// It matches contracts.ErrSessionCorrupt with errors.Is.
type ErrCorruptSession struct {
	SessionID string
	Err       error
}

func (e ErrCorruptSession) Error() string {
	return fmt.Sprintf("session %s has unreadable state: %v", e.SessionID, e.Err)
}

func (e ErrCorruptSession) Unwrap() []error {
	return []error{contracts.ErrSessionCorrupt, e.Err}
}
