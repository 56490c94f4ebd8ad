// Package sessions binds HTTP requests to persisted per-user todo state.
package sessions

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"todolists/domain/contracts"
	"todolists/domain/events"
	"todolists/domain/session"
	"todolists/logging"
)

// Config holds session cookie and expiry settings.
type Config struct {
	CookieName    string        `env:"SESSION_COOKIE_NAME" default:"todolists_session"`
	TTL           time.Duration `env:"SESSION_TTL" default:"720h"`
	SecureCookie  bool          `env:"SESSION_SECURE_COOKIE" default:"false"`
	PruneInterval time.Duration `env:"SESSION_PRUNE_INTERVAL" default:"1h"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() *Config {
	return &Config{
		CookieName:    "todolists_session",
		TTL:           30 * 24 * time.Hour,
		PruneInterval: time.Hour,
	}
}

// Session is the state bound to the current request.
type Session struct {
	ID    string
	State *session.State
}

type contextKey struct{}

// FromContext returns the session attached by Manager.Middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}

// WithSession attaches a session to ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// Manager loads and saves session state around each request.
type Manager struct {
	repo      contracts.SessionRepository
	locks     *Locker
	cfg       Config
	publisher events.SessionEventPublisher
	logger    *logging.Logger
}

// NewManager creates a session manager over repo.
func NewManager(repo contracts.SessionRepository, cfg *Config) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Manager{
		repo:   repo,
		locks:  NewLocker(),
		cfg:    *cfg,
		logger: logging.Default().WithComponent("session_manager"),
	}
}

// SetEventPublisher sets the sink for session lifecycle events.
func (m *Manager) SetEventPublisher(p events.SessionEventPublisher) {
	m.publisher = p
}

// Middleware resolves the session cookie, holds the session's lock for the
// rest of the request and exposes the loaded state through FromContext.
// A missing or malformed cookie starts a new, empty session.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := m.sessionID(r)

		unlock := m.locks.Lock(id)
		defer unlock()

		state, err := m.load(ctx, id)
		if err != nil {
			m.logger.WithContext(ctx).Error("Failed to load session", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		m.setCookie(w, id)
		next.ServeHTTP(w, r.WithContext(WithSession(ctx, &Session{ID: id, State: state})))
	})
}

// Save persists the session's current state.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	return m.repo.Save(ctx, s.ID, s.State)
}

// Prune deletes sessions idle for longer than the configured TTL.
func (m *Manager) Prune(ctx context.Context) (int64, error) {
	now := time.Now()
	cutoff := now.Add(-m.cfg.TTL)
	removed, err := m.repo.PruneExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		m.logger.Session("Expired sessions pruned", "removed", removed, "ttl", m.cfg.TTL.String())
		if m.publisher != nil {
			m.publisher.PublishSessionsPruned(events.SessionsPrunedEvent{Removed: removed, Cutoff: cutoff, Timestamp: now})
		}
	}
	return removed, nil
}

// RunJanitor prunes expired sessions every PruneInterval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context) {
	if m.cfg.PruneInterval <= 0 {
		return
	}
	ticker := time.NewTicker(m.cfg.PruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.Prune(ctx); err != nil && !errors.Is(err, context.Canceled) {
				m.logger.Error("Session pruning failed", "error", err)
			}
		}
	}
}

func (m *Manager) sessionID(r *http.Request) string {
	if c, err := r.Cookie(m.cfg.CookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	m.logger.Session("Session created", "session_id", id)
	if m.publisher != nil {
		m.publisher.PublishSessionCreated(events.SessionCreatedEvent{SessionID: id, Timestamp: time.Now()})
	}
	return id
}

func (m *Manager) load(ctx context.Context, id string) (*session.State, error) {
	state, err := m.repo.Load(ctx, id)
	switch {
	case err == nil:
		return state, nil
	case errors.Is(err, contracts.ErrSessionNotFound):
		return session.New(), nil
	case errors.Is(err, contracts.ErrSessionCorrupt):
		m.logger.Warn("Discarding unreadable session", "session_id", id, "error", err)
		return session.New(), nil
	default:
		return nil, err
	}
}

func (m *Manager) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
