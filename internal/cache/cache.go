// Package cache is the local durable key-value store used as a warm-start
// mirror of remote state. The remote service stays authoritative on load;
// the cache only keeps the last confirmed collection, the notification-shown
// map, the last daily reset date, and the UI theme across restarts.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	_ "modernc.org/sqlite"
)

// Well-known cache keys
const (
	keyProjects  = "projects"
	keyShown     = "shown_notifications"
	keyLastReset = "last_notification_reset"
	keyTheme     = "theme"
)

// ErrNotFound is returned when a key has no cached value
var ErrNotFound = errors.New("cache: key not found")

// Cache wraps the SQLite key-value database
type Cache struct {
	db *sql.DB
}

// DefaultPath returns the default cache path (~/.pm/cache.db)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pm", "cache.db"), nil
}

// Open opens or creates the cache database
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to cache: %w", err)
	}

	if _, err := db.Exec(migrationCreateKV); err != nil {
		return nil, fmt.Errorf("cache migration failed: %w", err)
	}

	return &Cache{db: db}, nil
}

// OpenDefault opens the cache at the default path
func OpenDefault() (*Cache, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

const migrationCreateKV = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the raw value for key, or ErrNotFound
func (c *Cache) Get(key string) (string, error) {
	var value string
	err := c.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("cache get %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value
func (c *Cache) Put(key, value string) error {
	_, err := c.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("cache put %q: %w", key, err)
	}
	return nil
}

func (c *Cache) getJSON(key string, v interface{}) error {
	raw, err := c.Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), v)
}

func (c *Cache) putJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Put(key, string(data))
}

// SaveProjects mirrors the canonical collection
func (c *Cache) SaveProjects(projects []model.Project) error {
	return c.putJSON(keyProjects, projects)
}

// LoadProjects returns the mirrored collection, or nil when absent
func (c *Cache) LoadProjects() ([]model.Project, error) {
	var projects []model.Project
	if err := c.getJSON(keyProjects, &projects); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return projects, nil
}

// SaveShown persists the notification-shown map
func (c *Cache) SaveShown(shown map[string]bool) error {
	return c.putJSON(keyShown, shown)
}

// LoadShown returns the notification-shown map, empty when absent
func (c *Cache) LoadShown() (map[string]bool, error) {
	shown := map[string]bool{}
	if err := c.getJSON(keyShown, &shown); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return shown, nil
}

// SaveLastReset persists the date (YYYY-MM-DD) of the last daily reset
func (c *Cache) SaveLastReset(date string) error {
	return c.Put(keyLastReset, date)
}

// LoadLastReset returns the last daily reset date, empty when never reset
func (c *Cache) LoadLastReset() (string, error) {
	date, err := c.Get(keyLastReset)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return date, err
}

// SaveTheme persists the UI theme
func (c *Cache) SaveTheme(theme string) error {
	return c.Put(keyTheme, theme)
}

// LoadTheme returns the cached UI theme, empty when unset
func (c *Cache) LoadTheme() (string, error) {
	theme, err := c.Get(keyTheme)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return theme, err
}
