package repositories

import (
	"context"
	"sync"
	"time"

	"todolists/domain/contracts"
	"todolists/domain/session"
	"todolists/infrastructure/serialization"
)

type memorySession struct {
	raw       string
	updatedAt time.Time
}

// MemorySessionRepository keeps sessions in process memory. States are
// stored serialized so callers never share pointers with the store, matching
// the SQLite repository's copy semantics.
type MemorySessionRepository struct {
	mu         sync.RWMutex
	sessions   map[string]memorySession
	serializer *serialization.SessionStateSerializer
	now        func() time.Time
}

// NewMemorySessionRepository creates an empty in-memory session repository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions:   make(map[string]memorySession),
		serializer: serialization.NewSessionStateSerializer(),
		now:        time.Now,
	}
}

// SetClock overrides the time source used for last-saved timestamps.
func (r *MemorySessionRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func (r *MemorySessionRepository) Load(_ context.Context, id string) (*session.State, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, contracts.ErrSessionNotFound
	}

	state, err := r.serializer.DeserializeState(s.raw)
	if err != nil {
		return nil, ErrCorruptSession{SessionID: id, Err: err}
	}
	return state, nil
}

func (r *MemorySessionRepository) Save(_ context.Context, id string, state *session.State) error {
	raw, err := r.serializer.SerializeState(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = memorySession{raw: raw, updatedAt: r.now()}
	return nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *MemorySessionRepository) PruneExpired(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, s := range r.sessions {
		if s.updatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *MemorySessionRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.sessions)), nil
}

var _ contracts.SessionRepository = (*MemorySessionRepository)(nil)
