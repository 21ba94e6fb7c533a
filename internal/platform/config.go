package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the content of a folio.toml file.
type Config struct {
	ContentRoot      string   `toml:"content_root"`  // relative paths resolve against the file's directory
	SnapshotName     string   `toml:"snapshot_name"` // default "cached.json"
	Ignore           []string `toml:"ignore"`
	Concurrency      int      `toml:"concurrency"`
	RebuildOnCorrupt bool     `toml:"rebuild_on_corrupt"`
	LogLevel         string   `toml:"log_level"` // "debug", "info", "warn", "error"
}

// LoadConfig reads a folio.toml file.
// A missing file yields a zero Config and no error.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.ContentRoot != "" && !filepath.IsAbs(cfg.ContentRoot) {
		cfg.ContentRoot = filepath.Join(filepath.Dir(path), cfg.ContentRoot)
	}
	if cfg.Concurrency < 0 {
		return cfg, fmt.Errorf("config file %s: concurrency must not be negative", path)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config as TOML.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options maps the file settings onto service options.
func (c Config) Options() []Option {
	var opts []Option
	if c.SnapshotName != "" {
		opts = append(opts, WithSnapshotName(c.SnapshotName))
	}
	if len(c.Ignore) > 0 {
		opts = append(opts, WithIgnore(c.Ignore...))
	}
	if c.Concurrency > 0 {
		opts = append(opts, WithConcurrency(c.Concurrency))
	}
	if c.RebuildOnCorrupt {
		opts = append(opts, WithRebuildOnCorrupt(true))
	}
	return opts
}

// ParseLevel converts a log level name to a slog.Level. An empty name is Info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
