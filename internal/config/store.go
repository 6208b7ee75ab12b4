package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PersistenceError reports a failure to read or write the config file.
type PersistenceError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// Store reads and writes a Config as a YAML file.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file yields Default(), and classes
// absent from the file keep their default value.
func (s *Store) Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Default(), &PersistenceError{Path: s.path, Message: "failed to read config", Cause: err}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), &PersistenceError{Path: s.path, Message: "failed to parse YAML", Cause: err}
	}
	return cfg, nil
}

// Save writes cfg to the config file, creating its directory if needed.
func (s *Store) Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &PersistenceError{Path: s.path, Message: "failed to create config directory", Cause: err}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return &PersistenceError{Path: s.path, Message: "failed to encode YAML", Cause: err}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &PersistenceError{Path: s.path, Message: "failed to write config", Cause: err}
	}
	return nil
}

// Reset overwrites the config file with the built-in classes.
func (s *Store) Reset() error {
	return s.Save(Default())
}
