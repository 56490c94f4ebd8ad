package database

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration is one embedded schema change, named "<version>_<name>.sql".
type Migration struct {
	Version int64
	Name    string
	SQL     string
}

// MigrationStatus reports whether a known migration has been applied.
type MigrationStatus struct {
	Migration
	Applied bool
}

// loadMigrations parses the embedded migration files and returns them sorted by version.
func loadMigrations() ([]Migration, error) {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	migrations := make([]Migration, 0, len(entries))
	seen := make(map[int64]string, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".sql")
		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, name)
		}
		seen[version] = name

		content, err := migrationFiles.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// parseMigrationVersion extracts the leading version number from "1_init.sql".
func parseMigrationVersion(filename string) (int64, error) {
	if !strings.HasSuffix(filename, ".sql") {
		return 0, fmt.Errorf("non-migration file found in migrations path: %s", filename)
	}
	prefix, _, ok := strings.Cut(strings.TrimSuffix(filename, ".sql"), "_")
	if !ok {
		return 0, fmt.Errorf("malformed migration filename: %s", filename)
	}
	version, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version from migration %s: %w", filename, err)
	}
	return version, nil
}

func (d *Database) createMigrationsTable(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := d.writeDB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func (d *Database) appliedVersions(ctx context.Context) (map[int64]bool, error) {
	rows, err := d.readDB.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int64]bool)
	for rows.Next() {
		var version int64
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// applyMigration runs one migration and records it in the same transaction.
func (d *Database) applyMigration(ctx context.Context, m Migration) error {
	d.logger.Database("Applying migration", "version", m.Version, "name", m.Name)

	tx, err := d.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", m.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
		m.Version, m.Name,
	); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", m.Name, err)
	}
	return nil
}

// Migrate applies all pending migrations and returns how many ran.
func (d *Database) Migrate(ctx context.Context) (int, error) {
	if err := d.createMigrationsTable(ctx); err != nil {
		return 0, err
	}

	migrations, err := loadMigrations()
	if err != nil {
		return 0, err
	}

	applied, err := d.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := d.applyMigration(ctx, m); err != nil {
			return count, fmt.Errorf("migration %s failed: %w", m.Name, err)
		}
		count++
	}

	d.logger.Database("Database migrations checked", "applied", count, "total", len(migrations))
	return count, nil
}

// MigrationStatuses lists every embedded migration with its applied flag.
func (d *Database) MigrationStatuses(ctx context.Context) ([]MigrationStatus, error) {
	if err := d.createMigrationsTable(ctx); err != nil {
		return nil, err
	}
	migrations, err := loadMigrations()
	if err != nil {
		return nil, err
	}
	applied, err := d.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]MigrationStatus, len(migrations))
	for i, m := range migrations {
		statuses[i] = MigrationStatus{Migration: m, Applied: applied[m.Version]}
	}
	return statuses, nil
}

func (d *Database) runMigrations() error {
	_, err := d.Migrate(context.Background())
	return err
}

// checkDatabaseExists reports whether path names a non-empty database file.
func checkDatabaseExists(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	stat, err := os.Stat(abs)
	return err == nil && stat.Size() > 0
}
