package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppName names the config directory.
const AppName = "upwd"

// Settings are the process-level options taken from the environment.
type Settings struct {
	ConfigPath string `env:"UPWD_CONFIG"`
	LogLevel   string `env:"UPWD_LOG_LEVEL" envDefault:"warn"`
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given). Missing files are skipped; variables already set win.
// A file that exists but cannot be read or parsed is an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ParseSettings reads Settings from the environment and fills in the
// default config path.
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.ConfigPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return Settings{}, err
		}
		s.ConfigPath = p
	}
	return s, nil
}

// DefaultPath returns <user config dir>/upwd/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, AppName, "config.yaml"), nil
}

// Level maps LogLevel onto a slog level. Unknown names mean warn.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
