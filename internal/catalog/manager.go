package catalog

import (
	"fmt"

	"github.com/blackwell-systems/readshelf/internal/storage"
)

// Manager provides high-level library persistence: it parses the stored
// value on Load and marshals the whole library on Save.
type Manager struct {
	store storage.Store
	key   string
}

// NewManager creates a Manager storing the library under key.
func NewManager(store storage.Store, key string) *Manager {
	return &Manager{store: store, key: key}
}

// Key returns the storage key.
func (m *Manager) Key() string {
	return m.key
}

// Load retrieves and parses the library.
// Returns an empty slice if nothing was stored yet (not an error).
func (m *Manager) Load() ([]Book, error) {
	value, ok, err := m.store.Get(m.key)
	if err != nil {
		return nil, fmt.Errorf("reading library: %w", err)
	}
	if !ok {
		return []Book{}, nil
	}

	books, err := Parse([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("parsing library: %w", err)
	}
	return books, nil
}

// Save marshals and stores the whole library.
func (m *Manager) Save(books []Book) error {
	data, err := Marshal(books)
	if err != nil {
		return fmt.Errorf("marshaling library: %w", err)
	}
	if err := m.store.Set(m.key, string(data)); err != nil {
		return fmt.Errorf("writing library: %w", err)
	}
	return nil
}
