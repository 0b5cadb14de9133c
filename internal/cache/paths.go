// Package cache keeps downloaded cover thumbnails on disk, one file per
// library book.
package cache

import (
	"os"
	"path/filepath"
	"strings"
)

// Manager handles the local cover cache.
type Manager struct {
	baseDir string
}

// New creates a cache Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Dir returns the cache root.
func (m *Manager) Dir() string {
	return m.baseDir
}

// Path returns the cache path for a book's cover.
// Layout: <baseDir>/<id>.jpg
func (m *Manager) Path(id string) string {
	return filepath.Join(m.baseDir, safeName(id)+".jpg")
}

// Exists reports whether the cover is cached.
func (m *Manager) Exists(id string) bool {
	_, err := os.Stat(m.Path(id))
	return err == nil
}

// EnsureDir creates the cache root.
func (m *Manager) EnsureDir() error {
	return os.MkdirAll(m.baseDir, 0750)
}

// Remove deletes the cached cover if it exists.
func (m *Manager) Remove(id string) error {
	err := os.Remove(m.Path(id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// safeName keeps volume IDs from escaping the cache directory.
func safeName(id string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(id)
}
