package repositories

import (
	"context"
	"database/sql"
	"time"

	"todolists/database"
)

// BaseRepository provides database access and SQL value conversions that can
// be embedded in all repositories.
type BaseRepository struct {
	db  *database.Database
	now func() time.Time
}

// NewBaseRepository creates a new BaseRepository with database access
func NewBaseRepository(database *database.Database) *BaseRepository {
	return &BaseRepository{
		db:  database,
		now: time.Now,
	}
}

// ReadDB returns the read pool for SELECT statements
func (b *BaseRepository) ReadDB() *sql.DB {
	return b.db.ReadDB()
}

// WriteDB returns the serialized connection for INSERT/UPDATE/DELETE statements
func (b *BaseRepository) WriteDB() *sql.DB {
	return b.db.WriteDB()
}

// WithTx executes a function within a write transaction
func (b *BaseRepository) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return b.db.WithTx(ctx, fn)
}

// Now returns the current time used for timestamps.
func (b *BaseRepository) Now() time.Time {
	return b.now()
}

// ToUnix converts a time to the integer seconds stored in timestamp columns.
func (b *BaseRepository) ToUnix(t time.Time) int64 {
	return t.UTC().Unix()
}
