package config

import (
	"path/filepath"
	"time"
)

// Config is the top-level readshelf configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Covers  CoversConfig  `mapstructure:"covers" yaml:"covers"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// SearchConfig holds book metadata API settings.
type SearchConfig struct {
	APIBase    string        `mapstructure:"api_base" yaml:"api_base"`
	APIKeyEnv  string        `mapstructure:"api_key_env" yaml:"api_key_env"`
	MaxResults int           `mapstructure:"max_results" yaml:"max_results"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	APIKey     string        `mapstructure:"-" yaml:"-"` // resolved at runtime, never written
}

// StorageConfig selects the key-value backend holding the library.
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"` // file, bolt, sqlite or memory
	Path    string `mapstructure:"path" yaml:"path"`
	Key     string `mapstructure:"key" yaml:"key"`
}

// CoversConfig holds the cover cache location.
type CoversConfig struct {
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// EffectivePath returns the storage path, falling back to a per-backend
// default file name inside the data directory.
func (s *StorageConfig) EffectivePath(dataDir string) string {
	if s.Path != "" {
		return s.Path
	}
	switch s.Backend {
	case "bolt":
		return filepath.Join(dataDir, "library.bolt")
	case "sqlite":
		return filepath.Join(dataDir, "library.db")
	default:
		return filepath.Join(dataDir, "library.json")
	}
}

// EffectiveKey returns the storage key or the historical default.
func (s *StorageConfig) EffectiveKey() string {
	if s.Key != "" {
		return s.Key
	}
	return DefaultStorageKey
}
