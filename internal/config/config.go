// internal/config/config.go
//
// This package handles configuration and the archive's home directory.
// Every user gets a ~/.soundarchive/ folder (or $SOUNDARCHIVE_HOME) holding
// config.yaml, logs and supplemental catalog files.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// HomeDirName is the folder created under the user's home directory.
	HomeDirName = ".soundarchive"

	// HomeEnv overrides the home directory location.
	HomeEnv = "SOUNDARCHIVE_HOME"

	defaultAutoStop    = 5 * time.Second
	defaultLatestCount = 3
)

const defaultConfigYAML = `# sound archive configuration
version: 1

playback:
  # How long a specimen stays "playing" before it stops on its own.
  auto_stop: 5s

catalog:
  # Extra specimens are read from *.yaml and *.go files in this directory.
  # Relative paths resolve against the archive home.
  dir: catalog

ui:
  latest_count: 3
  show_log: false

bridge:
  enabled: false
  host: 127.0.0.1
  port: 8766
`

// PlaybackConfig controls the simulated player.
type PlaybackConfig struct {
	AutoStop string `yaml:"auto_stop"`
}

// CatalogConfig points at supplemental specimen definitions.
type CatalogConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	LatestCount int  `yaml:"latest_count"`
	ShowLog     bool `yaml:"show_log"`
}

// BridgeConfig is the raw remote bridge section; eventbridge applies
// defaults and environment overrides on top of it.
type BridgeConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Host    string `yaml:"host,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

// FileConfig models config.yaml.
type FileConfig struct {
	Version  int            `yaml:"version"`
	Playback PlaybackConfig `yaml:"playback"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	UI       UIConfig       `yaml:"ui"`
	Bridge   BridgeConfig   `yaml:"bridge"`
}

// Config holds the runtime configuration.
type Config struct {
	// HomeDir is the archive home (~/.soundarchive by default)
	HomeDir string

	// Path is the config file that was read, if any
	Path string

	File FileConfig

	autoStop time.Duration
}

// Option customizes NewConfig.
type Option func(*Config)

// WithConfigPath reads the given file instead of <home>/config.yaml.
func WithConfigPath(path string) Option {
	return func(c *Config) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			c.Path = trimmed
		}
	}
}

// ResolveHome returns $SOUNDARCHIVE_HOME, falling back to ~/.soundarchive.
func ResolveHome() (string, error) {
	if home := strings.TrimSpace(os.Getenv(HomeEnv)); home != "" {
		return filepath.Clean(home), nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home: %w", err)
	}
	return filepath.Join(userHome, HomeDirName), nil
}

// InitHomeDir creates the archive home layout and a default config file.
//
// Structure created:
// <home>/
// ├── config.yaml
// ├── logs/      <- diagnostic log and session journal
// └── catalog/   <- supplemental specimen definitions
func InitHomeDir(home string) error {
	dirs := []string{
		filepath.Join(home, "logs"),
		filepath.Join(home, "catalog"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	return ensureConfigFile(filepath.Join(home, "config.yaml"))
}

// NewConfig loads configuration for the given home directory.
func NewConfig(home string, opts ...Option) (*Config, error) {
	cfg := &Config{
		HomeDir: home,
		Path:    filepath.Join(home, "config.yaml"),
		File:    defaultFileConfig(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the directory holding log files.
func (c *Config) LogsDir() string {
	return filepath.Join(c.HomeDir, "logs")
}

// CatalogDir returns the supplemental catalog directory.
func (c *Config) CatalogDir() string {
	return resolvePath(c.HomeDir, c.File.Catalog.Dir)
}

// AutoStop returns the playback auto-stop delay.
func (c *Config) AutoStop() time.Duration {
	if c == nil || c.autoStop <= 0 {
		return defaultAutoStop
	}
	return c.autoStop
}

// LatestCount is how many specimens the overview features.
func (c *Config) LatestCount() int {
	if c == nil || c.File.UI.LatestCount <= 0 {
		return defaultLatestCount
	}
	return c.File.UI.LatestCount
}

// SetCatalogDir overrides the catalog directory for this run only.
func (c *Config) SetCatalogDir(dir string) {
	if trimmed := strings.TrimSpace(dir); trimmed != "" {
		c.File.Catalog.Dir = trimmed
	}
}

func (c *Config) load() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c.finalize()
		}
		return fmt.Errorf("config: read %s: %w", c.Path, err)
	}

	parsed := defaultFileConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.Path, err)
	}
	c.File = parsed
	return c.finalize()
}

func (c *Config) finalize() error {
	c.File.applyDefaults()
	c.File.normalize()
	if err := c.File.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	d, err := time.ParseDuration(c.File.Playback.AutoStop)
	if err != nil {
		return fmt.Errorf("config: playback.auto_stop: %w", err)
	}
	c.autoStop = d
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if value := strings.TrimSpace(os.Getenv("SOUNDARCHIVE_AUTO_STOP")); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("config: SOUNDARCHIVE_AUTO_STOP %q is not a positive duration", value)
		}
		c.autoStop = d
		c.File.Playback.AutoStop = d.String()
	}
	if dir := strings.TrimSpace(os.Getenv("SOUNDARCHIVE_CATALOG_DIR")); dir != "" {
		c.File.Catalog.Dir = dir
	}
	return nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version:  1,
		Playback: PlaybackConfig{AutoStop: defaultAutoStop.String()},
		Catalog:  CatalogConfig{Dir: "catalog"},
		UI:       UIConfig{LatestCount: defaultLatestCount},
	}
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	if strings.TrimSpace(fc.Playback.AutoStop) == "" {
		fc.Playback.AutoStop = defaultAutoStop.String()
	}
	if fc.UI.LatestCount == 0 {
		fc.UI.LatestCount = defaultLatestCount
	}
}

func (fc *FileConfig) normalize() {
	fc.Playback.AutoStop = strings.TrimSpace(fc.Playback.AutoStop)
	fc.Catalog.Dir = strings.TrimSpace(fc.Catalog.Dir)
	fc.Bridge.Host = strings.TrimSpace(fc.Bridge.Host)
}

func (fc *FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	d, err := time.ParseDuration(fc.Playback.AutoStop)
	if err != nil {
		return fmt.Errorf("playback.auto_stop: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("playback.auto_stop must be positive")
	}
	if fc.UI.LatestCount < 0 {
		return fmt.Errorf("ui.latest_count must be >= 0")
	}
	if fc.Bridge.Port < 0 || fc.Bridge.Port > 65535 {
		return fmt.Errorf("bridge.port must be between 0 and 65535")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
