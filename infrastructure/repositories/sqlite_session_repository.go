package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todolists/database"
	"todolists/domain/contracts"
	"todolists/domain/session"
	"todolists/infrastructure/serialization"
)

// SqliteSessionRepository implements contracts.SessionRepository on the
// sessions table, storing each session's state as a JSON document.
type SqliteSessionRepository struct {
	*BaseRepository
	serializer *serialization.SessionStateSerializer
}

// NewSqliteSessionRepository creates a session repository with read/write database separation.
func NewSqliteSessionRepository(database *database.Database) contracts.SessionRepository {
	return &SqliteSessionRepository{
		BaseRepository: NewBaseRepository(database),
		serializer:     serialization.NewSessionStateSerializer(),
	}
}

// Load retrieves the state of a session.
func (r *SqliteSessionRepository) Load(ctx context.Context, id string) (*session.State, error) {
	var raw string
	err := r.ReadDB().QueryRowContext(ctx,
		"SELECT state FROM sessions WHERE id = ?", id,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contracts.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	state, err := r.serializer.DeserializeState(raw)
	if err != nil {
		return nil, ErrCorruptSession{SessionID: id, Err: err}
	}
	return state, nil
}

// Save upserts the state of a session and bumps its updated_at.
func (r *SqliteSessionRepository) Save(ctx context.Context, id string, state *session.State) error {
	raw, err := r.serializer.SerializeState(state)
	if err != nil {
		return err
	}

	now := r.ToUnix(r.Now())
	_, err = r.WriteDB().ExecContext(ctx, `
		INSERT INTO sessions (id, state, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at`,
		id, raw, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session.
func (r *SqliteSessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.WriteDB().ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PruneExpired deletes sessions not saved since cutoff.
func (r *SqliteSessionRepository) PruneExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE updated_at < ?", r.ToUnix(cutoff))
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	return removed, nil
}

// Count returns the number of stored sessions.
func (r *SqliteSessionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.ReadDB().QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}
