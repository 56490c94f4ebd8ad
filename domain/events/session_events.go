package events

import "time"

// SessionCreatedEvent represents a visitor without a valid cookie being
// given a new session.
type SessionCreatedEvent struct {
	SessionID string
	Timestamp time.Time
}

// SessionsPrunedEvent represents an expiry sweep that removed sessions.
type SessionsPrunedEvent struct {
	Removed   int64
	Cutoff    time.Time
	Timestamp time.Time
}
