package cache

import (
	"fmt"
	"io"
	"os"
)

// Store writes r to the cache path for id and returns that path.
// The data is written to a temp file first, so a failed download never
// leaves a partial cover behind.
func (m *Manager) Store(id string, r io.Reader) (string, error) {
	if err := m.EnsureDir(); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	destPath := m.Path(id)
	tmpPath := destPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing to cache: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if n == 0 {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("empty cover for %q", id)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return destPath, nil
}
