// Package recent keeps the most-recently-launched application names.
package recent

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLimit is the number of names kept when no limit is given
const DefaultLimit = 10

// state is the on-disk form of the cache
type state struct {
	RecentApps []string `json:"recent_apps"`
}

// Cache is an ordered list of application names, most recent first.
// It is safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	path  string
	limit int
	names []string
}

// New creates an empty cache persisted at path
func New(path string, limit int) *Cache {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Cache{path: path, limit: limit}
}

// Load reads the cache from path. A missing file yields an empty cache.
func Load(path string, limit int) (*Cache, error) {
	c := New(path, limit)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return c, err
	}

	c.names = dedupe(s.RecentApps, c.limit)
	return c, nil
}

// Path returns the file the cache is persisted to
func (c *Cache) Path() string {
	return c.path
}

// Names returns a snapshot of the cached names, most recent first
func (c *Cache) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.names...)
}

// Record moves name to the front of the cache and persists it.
// The in-memory list is left unchanged when the write fails.
func (c *Cache) Record(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := dedupe(append([]string{name}, c.names...), c.limit)
	if err := c.write(updated); err != nil {
		return err
	}
	c.names = updated
	return nil
}

// Save persists the current names
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(c.names)
}

// write must be called with mu held
func (c *Cache) write(names []string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state{RecentApps: names}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0644)
}

// dedupe drops empty and repeated names, keeping the first occurrence, and
// truncates to limit
func dedupe(names []string, limit int) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, min(len(names), limit))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out
}
