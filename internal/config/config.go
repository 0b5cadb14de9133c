package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIBase is the public Google Books volumes endpoint.
	DefaultAPIBase = "https://www.googleapis.com/books/v1/volumes"

	// DefaultStorageKey is the key the whole library is stored under.
	// It matches the browser localStorage key so exports load unchanged.
	DefaultStorageKey = "myBookLibrary"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "readshelf", "config.yml")
}

// DataDir returns the directory holding the library store.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "readshelf")
}

// StateDir returns the directory holding logs.
func StateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "readshelf")
}

// Load reads the config from disk (or env). A missing file is not an error;
// defaults apply until init writes one.
func Load() (*Config, error) {
	configPath := os.Getenv("READSHELF_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	return LoadFile(configPath)
}

// LoadFile reads the config from an explicit path.
func LoadFile(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("search.api_base", DefaultAPIBase)
	v.SetDefault("search.api_key_env", "GOOGLE_BOOKS_API_KEY")
	v.SetDefault("search.max_results", 20)
	v.SetDefault("search.timeout", 15*time.Second)
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.key", DefaultStorageKey)
	v.SetDefault("covers.cache_dir", filepath.Join(DataDir(), "covers"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix("READSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// API key comes from the environment only.
	if cfg.Search.APIKeyEnv != "" {
		cfg.Search.APIKey = os.Getenv(cfg.Search.APIKeyEnv)
	}
	if cfg.Search.APIKey == "" {
		cfg.Search.APIKey = os.Getenv("READSHELF_API_KEY")
	}

	cfg.Storage.Path = ExpandHome(cfg.Storage.Path)
	cfg.Covers.CacheDir = ExpandHome(cfg.Covers.CacheDir)
	cfg.Log.File = ExpandHome(cfg.Log.File)

	return &cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
