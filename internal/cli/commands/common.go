package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sky-xo/treediff/internal/config"
	"github.com/sky-xo/treediff/internal/db"
	"github.com/sky-xo/treediff/internal/document"
)

func openDB() (*db.DB, error) {
	dbPath := filepath.Join(config.DataDir(), "treediff.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	return db.Open(dbPath)
}

// resolveFormat picks the parse format for one file: the explicit flag wins,
// then the file extension, then the configured default.
func resolveFormat(flag string, path string, cfg *config.Config) document.Format {
	if f := document.ParseFormat(flag); f != document.FormatAuto {
		return f
	}
	if f := document.DetectFormat(path); f != document.FormatAuto {
		return f
	}
	return document.ParseFormat(cfg.DefaultFormat)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return config.Default()
	}
	return cfg
}
