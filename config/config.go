package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the text frequency tool.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig holds frequency analysis configuration.
type AnalysisConfig struct {
	TopK          int   `yaml:"top_k"`
	DefaultNGram  int   `yaml:"default_ngram"`
	MinNGram      int   `yaml:"min_ngram"`
	MaxNGram      int   `yaml:"max_ngram"`
	CompareSizes  []int `yaml:"compare_sizes"`
	MaxInputBytes int64 `yaml:"max_input_bytes"` // Documents above this size are rejected (0 = unlimited)

	// Cache of recently used documents for the HTTP shell (0 disables it)
	CacheSize int           `yaml:"cache_size"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

// IngestConfig holds batch ingest configuration.
type IngestConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	EnableCORS   bool          `yaml:"enable_cors"`
	Debug        bool          `yaml:"debug"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			TopK:          20,
			DefaultNGram:  1,
			MinNGram:      1,
			MaxNGram:      100,
			CompareSizes:  []int{2, 3, 4},
			MaxInputBytes: 10 << 20,
			CacheSize:     128,
			CacheTTL:      10 * time.Minute,
		},
		Ingest: IngestConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/.textfreq/**"},
		},
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			EnableCORS:   true,
			Debug:        false,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textfreq.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textfreq.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textfreq", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ClampNGram bounds a requested n-gram size to the configured range.
func (c *Config) ClampNGram(n int) int {
	lo, hi := c.Analysis.MinNGram, c.Analysis.MaxNGram
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// StoreDBPath returns the path to the document database.
func StoreDBPath(dir string) string {
	return filepath.Join(dir, ".textfreq", "documents.db")
}

// EnsureDataDir ensures the .textfreq directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textfreq"), 0755)
}
