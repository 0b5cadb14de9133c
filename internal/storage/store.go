// Package storage provides the string-keyed get/set store that holds the
// serialized library. Writes are unconditional: last writer wins.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a string-keyed get/set store.
type Store interface {
	// Get returns the value for key. ok is false when the key was never set.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}

// Backends lists the names accepted by Open.
var Backends = []string{"file", "bolt", "sqlite", "memory"}

// Open opens the backend by name. path is ignored for "memory".
func Open(backend, path string) (Store, error) {
	if backend != "memory" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	switch backend {
	case "", "file":
		return NewFileStore(path), nil
	case "bolt":
		return OpenBolt(path)
	case "sqlite":
		return OpenSQLite(path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
