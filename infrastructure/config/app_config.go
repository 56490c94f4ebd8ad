package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"todolists/database"
	"todolists/infrastructure/sessions"
	"todolists/logging"
)

// Session storage backends.
const (
	SessionStoreSQLite = "sqlite"
	SessionStoreMemory = "memory"
)

// AppConfig holds application-wide system configuration.
type AppConfig struct {
	HTTPAddr     string
	HTTPLogPath  string
	SessionStore string
	Database     *database.Config
	Logging      *logging.Config
	Session      *sessions.Config
}

// LoadEnvironment loads .env files into the process environment without
// overriding variables that are already set. Missing files are not an error.
func LoadEnvironment(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// LoadAppConfigFromEnv loads complete application configuration from environment variables.
func LoadAppConfigFromEnv() *AppConfig {
	return source{}.appConfig()
}

// LoadAppConfig loads configuration from an optional TOML file whose keys are
// the environment variable names (HTTP_ADDR = ":9090"). Environment variables
// take precedence over file values; an empty path reads the environment only.
func LoadAppConfig(path string) (*AppConfig, error) {
	if path == "" {
		return LoadAppConfigFromEnv(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	file := make(map[string]string, len(raw))
	for k, v := range raw {
		switch v.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("config file %s: key %s must be a scalar", path, k)
		}
		file[strings.ToUpper(k)] = fmt.Sprint(v)
	}

	return source{file: file}.appConfig(), nil
}

// source resolves a key from the environment first, then from file values.
type source struct {
	file map[string]string
}

func (s source) appConfig() *AppConfig {
	return &AppConfig{
		HTTPAddr:     s.str("HTTP_ADDR", ":8080"),
		HTTPLogPath:  s.str("HTTP_LOG_PATH", ""),
		SessionStore: strings.ToLower(s.str("SESSION_STORE", SessionStoreSQLite)),
		Database:     s.databaseConfig(),
		Logging:      s.loggingConfig(),
		Session:      s.sessionConfig(),
	}
}

func (s source) databaseConfig() *database.Config {
	return &database.Config{
		Path:              s.str("DB_PATH", "./todolists.db"),
		MaxOpenConns:      s.int("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:      s.int("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:   s.duration("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime:   s.duration("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
		BusyTimeoutMs:     s.int("DB_BUSY_TIMEOUT_MS", 5000),
		EnableForeignKeys: s.bool("DB_ENABLE_FOREIGN_KEYS", true),
		EnableWAL:         s.bool("DB_ENABLE_WAL", true),
		StrictMode:        s.bool("DB_STRICT_MODE", true),
	}
}

func (s source) loggingConfig() *logging.Config {
	return &logging.Config{
		Level:  s.str("LOG_LEVEL", "info"),
		Format: s.str("LOG_FORMAT", "json"),
		Output: s.str("LOG_OUTPUT", "stdout"),
	}
}

func (s source) sessionConfig() *sessions.Config {
	return &sessions.Config{
		CookieName:    s.str("SESSION_COOKIE_NAME", "todolists_session"),
		TTL:           s.duration("SESSION_TTL", 30*24*time.Hour),
		SecureCookie:  s.bool("SESSION_SECURE_COOKIE", false),
		PruneInterval: s.duration("SESSION_PRUNE_INTERVAL", time.Hour),
	}
}

func (s source) str(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value, ok := s.file[key]; ok && value != "" {
		return value
	}
	return defaultValue
}

func (s source) int(key string, defaultValue int) int {
	if i, err := strconv.Atoi(s.str(key, "")); err == nil {
		return i
	}
	return defaultValue
}

func (s source) bool(key string, defaultValue bool) bool {
	return parseBool(s.str(key, ""), defaultValue)
}

func (s source) duration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(s.str(key, "")); err == nil {
		return d
	}
	return defaultValue
}

func parseBool(v string, def bool) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
