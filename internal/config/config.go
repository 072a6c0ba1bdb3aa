package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is treediff's configuration file.
type Config struct {
	// Indent is the indent width used by the fmt command and the viewer.
	Indent int `yaml:"indent"`
	// DefaultFormat is used when a file's extension is ambiguous:
	// "json", "yaml" or "auto".
	DefaultFormat string `yaml:"defaultFormat"`
	// WatchIntervalMs is the poll interval for --watch.
	WatchIntervalMs int `yaml:"watchIntervalMs"`
	// HistoryLimit caps how many comparisons `treediff history` lists.
	HistoryLimit int `yaml:"historyLimit"`

	Colors Colors `yaml:"colors"`
}

// Colors overrides the viewer's diff colors. Values are terminal color
// codes or hex strings understood by lipgloss.
type Colors struct {
	Added   string `yaml:"added"`
	Removed string `yaml:"removed"`
	Changed string `yaml:"changed"`
	Muted   string `yaml:"muted"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Indent:          2,
		DefaultFormat:   "auto",
		WatchIntervalMs: 1000,
		HistoryLimit:    20,
		Colors: Colors{
			Added:   "10",
			Removed: "9",
			Changed: "11",
			Muted:   "8",
		},
	}
}

// LoadConfig loads the config from ~/.treediff/config.yaml.
// Returns defaults (not an error) if the file doesn't exist.
func LoadConfig() (*Config, error) {
	cfg := Default()

	configPath := filepath.Join(DataDir(), "config.yaml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // No config file is fine
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Guard against nonsense values; fall back field by field.
	def := Default()
	if cfg.Indent <= 0 {
		cfg.Indent = def.Indent
	}
	if cfg.WatchIntervalMs <= 0 {
		cfg.WatchIntervalMs = def.WatchIntervalMs
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = def.HistoryLimit
	}

	return cfg, nil
}
