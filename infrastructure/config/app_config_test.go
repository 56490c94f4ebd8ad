package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_PATH", "SESSION_STORE", "SESSION_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := LoadAppConfigFromEnv()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, SessionStoreSQLite, cfg.SessionStore)
	assert.Equal(t, "./todolists.db", cfg.Database.Path)
	assert.True(t, cfg.Database.EnableWAL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "todolists_session", cfg.Session.CookieName)
	assert.Equal(t, 720*time.Hour, cfg.Session.TTL)
}

func TestLoadAppConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("SESSION_STORE", "MEMORY")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_SECURE_COOKIE", "yes")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := LoadAppConfigFromEnv()

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Session.SecureCookie)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns, "invalid numbers fall back to the default")
}

func TestLoadAppConfig_FileValuesBelowEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todolists.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
HTTP_ADDR = ":7070"
DB_PATH = "/tmp/lists.db"
DB_MAX_OPEN_CONNS = 3
DB_ENABLE_WAL = false
session_ttl = "90m"
`), 0o644))

	t.Setenv("HTTP_ADDR", ":6060")
	t.Setenv("DB_PATH", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_ENABLE_WAL", "")
	t.Setenv("SESSION_TTL", "")

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":6060", cfg.HTTPAddr, "environment wins")
	assert.Equal(t, "/tmp/lists.db", cfg.Database.Path)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Database.EnableWAL)
	assert.Equal(t, 90*time.Minute, cfg.Session.TTL, "keys are case insensitive")
}

func TestLoadAppConfig_Errors(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "nested.toml")
	require.NoError(t, os.WriteFile(path, []byte("[http]\naddr = \":1\"\n"), 0o644))
	_, err = LoadAppConfig(path)
	assert.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TODOLISTS_TEST_KEY=from-file\n"), 0o644))
	t.Setenv("TODOLISTS_TEST_KEY", "")
	os.Unsetenv("TODOLISTS_TEST_KEY")

	require.NoError(t, LoadEnvironment(path, filepath.Join(dir, "absent.env")))
	assert.Equal(t, "from-file", os.Getenv("TODOLISTS_TEST_KEY"))
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("On", false))
	assert.False(t, parseBool("0", true))
	assert.True(t, parseBool("maybe", true))
}
