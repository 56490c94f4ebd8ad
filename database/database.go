package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todolists/logging"

	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path              string        `env:"DB_PATH" default:"./todolists.db"`
	MaxOpenConns      int           `env:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns      int           `env:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime   time.Duration `env:"DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime   time.Duration `env:"DB_CONN_MAX_IDLE_TIME" default:"15m"`
	BusyTimeoutMs     int           `env:"DB_BUSY_TIMEOUT_MS" default:"5000"`
	EnableForeignKeys bool          `env:"DB_ENABLE_FOREIGN_KEYS" default:"true"`
	EnableWAL         bool          `env:"DB_ENABLE_WAL" default:"true"`
	StrictMode        bool          `env:"DB_STRICT_MODE" default:"true"`
}

// Database wraps the SQL database connections and provides managed access
type Database struct {
	readDB  *sql.DB // Connection pool for reads
	writeDB *sql.DB // Serialized connection for writes
	config  Config
	logger  *logging.Logger
}

// New creates a new Database instance with separate read/write connections
func New(config Config, logger *logging.Logger) (*Database, error) {
	dsn := buildDSN(config)

	// Check if database needs to be initialized
	dbExists := checkDatabaseExists(config.Path)

	logger.Database("Opening database connections",
		"path", config.Path,
		"exists", dbExists,
		"read_max_open_conns", config.MaxOpenConns,
		"write_max_open_conns", 1)

	// Create read connection pool
	readDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open read database: %w", err)
	}

	// Configure read connection pool for concurrency
	readDB.SetMaxOpenConns(config.MaxOpenConns)
	readDB.SetMaxIdleConns(config.MaxIdleConns)
	readDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	readDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	// Create write connection (serialized)
	writeDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		readDB.Close()
		return nil, fmt.Errorf("failed to open write database: %w", err)
	}

	// Configure write connection for serialization
	writeDB.SetMaxOpenConns(1) // Single connection forces serialization
	writeDB.SetMaxIdleConns(1) // Keep the connection alive
	writeDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	writeDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	database := &Database{
		readDB:  readDB,
		writeDB: writeDB,
		config:  config,
		logger:  logger,
	}

	// Test connections and configure database
	if err := database.initialize(); err != nil {
		readDB.Close()
		writeDB.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run migrations to ensure database schema is up to date
	if err := database.runMigrations(); err != nil {
		readDB.Close()
		writeDB.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	logger.Database("Database initialized successfully",
		"path", config.Path,
		"existed", dbExists,
		"wal_mode", config.EnableWAL,
		"read_connections", config.MaxOpenConns,
		"write_connections", 1)

	return database, nil
}

// buildDSN constructs the SQLite Data Source Name with proper parameters.
// modernc.org/sqlite applies each _pragma on every new connection.
func buildDSN(config Config) string {
	dsn := fmt.Sprintf("file:%s?", config.Path)

	dsn += fmt.Sprintf("_pragma=busy_timeout(%d)", config.BusyTimeoutMs)

	if config.EnableWAL {
		dsn += "&_pragma=journal_mode(WAL)"
	}

	if config.EnableForeignKeys {
		dsn += "&_pragma=foreign_keys(1)"
	}

	dsn += "&_pragma=synchronous(NORMAL)"
	dsn += "&_pragma=temp_store(MEMORY)"

	return dsn
}

// initialize verifies both pools and applies settings the DSN cannot express.
func (d *Database) initialize() error {
	pools := map[string]*sql.DB{"read": d.readDB, "write": d.writeDB}

	for kind, pool := range pools {
		if err := pool.Ping(); err != nil {
			return fmt.Errorf("failed to ping %s database: %w", kind, err)
		}

		// Extra corruption checks on every page read
		if d.config.StrictMode {
			if _, err := pool.Exec("PRAGMA cell_size_check=ON"); err != nil {
				d.logger.Warn("Failed to enable cell size check", "connection", kind, "error", err)
			}
		}

		if !d.config.EnableWAL {
			continue
		}
		var journalMode string
		if err := pool.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
			return fmt.Errorf("failed to read journal mode on %s connection: %w", kind, err)
		}
		if journalMode != "wal" {
			d.logger.Warn("WAL mode not enabled", "connection", kind, "journal_mode", journalMode)
		}
	}

	return nil
}

// ReadDB returns the read database connection pool.
func (d *Database) ReadDB() *sql.DB {
	return d.readDB
}

// WriteDB returns the single serialized write connection.
func (d *Database) WriteDB() *sql.DB {
	return d.writeDB
}

// Close checkpoints the WAL and closes both pools.
func (d *Database) Close() error {
	d.logger.Database("Closing database connections")

	if d.config.EnableWAL {
		if _, err := d.writeDB.Exec("PRAGMA wal_checkpoint(TRUNCATE);"); err != nil {
			d.logger.Warn("Failed to checkpoint WAL", "error", err)
		}
	}

	var errs []error
	if err := d.readDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("read connection: %w", err))
	}
	if err := d.writeDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("write connection: %w", err))
	}
	return errors.Join(errs...)
}

// PoolStats is the JSON-friendly subset of sql.DBStats reported by Health.
type PoolStats struct {
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    string `json:"wait_duration"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// HealthReport describes both connection pools.
type HealthReport struct {
	Read  PoolStats `json:"read_pool"`
	Write PoolStats `json:"write_pool"`
}

// Health pings both pools and returns their statistics.
func (d *Database) Health(ctx context.Context) (*HealthReport, error) {
	if err := d.readDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("read database ping failed: %w", err)
	}
	if err := d.writeDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("write database ping failed: %w", err)
	}

	return &HealthReport{
		Read:  poolStats(d.readDB.Stats(), d.config.MaxOpenConns),
		Write: poolStats(d.writeDB.Stats(), 1),
	}, nil
}

func poolStats(s sql.DBStats, maxOpen int) PoolStats {
	return PoolStats{
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
		WaitCount:       s.WaitCount,
		WaitDuration:    s.WaitDuration.String(),
		MaxOpenConns:    maxOpen,
	}
}

// WithTx executes a function within a database transaction (uses write connection)
func (d *Database) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := d.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			d.logger.Error("Failed to rollback transaction", "error", rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
