// Package config loads the agent-monitor configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "AGENT_MONITOR_CONFIG"

// Config represents the full configuration surface. The classification core
// takes no configuration; everything here drives the collaborators around it.
type Config struct {
	OpenClawBin   string `toml:"openclaw_bin"`   // openclaw executable (default "openclaw")
	SessionsFile  string `toml:"sessions_file"`  // read the store directly instead of the CLI (optional)
	OutputPath    string `toml:"output_path"`    // where the HTML dashboard is written
	ActiveMinutes int    `toml:"active_minutes"` // sessions query window
	SessionLimit  int    `toml:"session_limit"`  // sessions query cap

	Watch WatchConfig `toml:"watch"`
	Serve ServeConfig `toml:"serve"`
}

// WatchConfig holds settings for the recurring regenerate loop.
type WatchConfig struct {
	Interval string `toml:"interval"` // poll interval, e.g. "30s"
}

// ServeConfig holds settings for the HTTP dashboard server.
type ServeConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OpenClawBin:   "openclaw",
		OutputPath:    defaultOutputPath(),
		ActiveMinutes: 360,
		SessionLimit:  20,
		Watch:         WatchConfig{Interval: "30s"},
		Serve:         ServeConfig{Host: "127.0.0.1", Port: 7380},
	}
}

func defaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "index.html"
	}
	return filepath.Join(home, ".agent-monitor", "index.html")
}

// DefaultPath returns the config file location, honoring EnvConfigPath.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "agent-monitor", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "agent-monitor", "config.toml")
}

// Load reads the config at path, or DefaultPath when path is empty. A missing
// file is not an error; defaults apply. Values absent from the file also fall
// back to defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: unknown config keys in %s: %v\n", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values a typo would most plausibly break.
func (c *Config) Validate() error {
	if c.ActiveMinutes < 0 {
		return fmt.Errorf("active_minutes must be >= 0, got %d", c.ActiveMinutes)
	}
	if c.SessionLimit < 0 {
		return fmt.Errorf("session_limit must be >= 0, got %d", c.SessionLimit)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path must not be empty")
	}
	if _, err := c.WatchInterval(); err != nil {
		return err
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port must be 0-65535, got %d", c.Serve.Port)
	}
	return nil
}

// WatchInterval parses the watch poll interval.
func (c *Config) WatchInterval() (time.Duration, error) {
	if c.Watch.Interval == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return 0, fmt.Errorf("watch.interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("watch.interval must be positive, got %s", d)
	}
	return d, nil
}
