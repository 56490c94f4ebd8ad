package events

import (
	"sync"
	"time"

	"todolists/domain/events"
	"todolists/logging"
)

// ActivitySnapshot is a point-in-time copy of the session activity counters.
type ActivitySnapshot struct {
	SessionsCreated int64      `json:"sessions_created"`
	SessionsPruned  int64      `json:"sessions_pruned"`
	LastPruneAt     *time.Time `json:"last_prune_at,omitempty"`
}

// ActivityEventHandlers tallies session lifecycle events since process start.
type ActivityEventHandlers struct {
	mu       sync.Mutex
	snapshot ActivitySnapshot
	logger   *logging.Logger
}

// NewActivityEventHandlers creates the activity counters.
func NewActivityEventHandlers() *ActivityEventHandlers {
	return &ActivityEventHandlers{
		logger: logging.Default().WithComponent("activity_events"),
	}
}

// RegisterHandlers registers the counters with the event bus
func (h *ActivityEventHandlers) RegisterHandlers(eventBus *SessionEventBus) {
	eventBus.OnSessionCreated(h.handleSessionCreated)
	eventBus.OnSessionsPruned(h.handleSessionsPruned)
}

// Snapshot returns the current counters.
func (h *ActivityEventHandlers) Snapshot() ActivitySnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.snapshot
	if s.LastPruneAt != nil {
		at := *s.LastPruneAt
		s.LastPruneAt = &at
	}
	return s
}

func (h *ActivityEventHandlers) handleSessionCreated(event events.SessionCreatedEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot.SessionsCreated++
}

func (h *ActivityEventHandlers) handleSessionsPruned(event events.SessionsPrunedEvent) {
	h.logger.Debug("Handling sessions pruned event", "removed", event.Removed, "cutoff", event.Cutoff)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot.SessionsPruned += event.Removed
	at := event.Timestamp
	h.snapshot.LastPruneAt = &at
}
