package contracts

import (
	"context"
	"time"

	"todolists/domain/session"
)

// SessionRepository persists per-session todo state keyed by session id.
type SessionRepository interface {
	// Load retrieves the state of a session, or ErrSessionNotFound.
	Load(ctx context.Context, id string) (*session.State, error)

	// Save creates or replaces the state of a session and refreshes its last-seen time.
	Save(ctx context.Context, id string, state *session.State) error

	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// PruneExpired removes sessions last saved before cutoff and returns how many were removed.
	PruneExpired(ctx context.Context, cutoff time.Time) (int64, error)

	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int64, error)
}
