package config

import (
	"os"
	"path/filepath"
)

func DataDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".treediff")
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return ".treediff"
	}
	return filepath.Join(home, ".treediff")
}
