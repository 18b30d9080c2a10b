package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Store reads and writes schema values in an INI file. Reads fall back to the schema default
// when a key is missing or holds a value that does not fit its type. Writes are saved
// immediately.
type Store struct {
	path   string
	schema Schema
	file   *ini.File
}

// Open loads the INI file at path for schema. A missing file is not an error; it is created on
// the first write.
func Open(path string, schema Schema) (*Store, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}
	f, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &Store{path: path, schema: schema, file: f}, nil
}

// Path returns the file the store is bound to.
func (s *Store) Path() string { return s.path }

// Schema returns the schema the store validates against.
func (s *Store) Schema() Schema { return s.schema }

func splitKey(key string) (section, name string) {
	section, name, found := strings.Cut(key, ".")
	if !found {
		return ini.DefaultSection, key
	}
	return section, name
}

func (s *Store) stored(key string) (string, bool) {
	section, name := splitKey(key)
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(name) {
		return "", false
	}
	return sec.Key(name).String(), true
}

// Get returns the effective value of key.
func (s *Store) Get(key string) (string, error) {
	e, ok := s.schema.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if v, ok := s.stored(key); ok {
		if norm, err := e.Normalize(v); err == nil {
			return norm, nil
		}
	}
	return e.Default, nil
}

// IsSet reports whether key has a value of its own in the file.
func (s *Store) IsSet(key string) bool {
	_, ok := s.stored(key)
	return ok
}

// String returns the effective value of key, or "" for unknown keys.
func (s *Store) String(key string) string {
	v, _ := s.Get(key)
	return v
}

// Bool returns the effective value of a bool key, or false for unknown keys.
func (s *Store) Bool(key string) bool {
	v, err := s.Get(key)
	if err != nil {
		return false
	}
	b, _ := ParseBool(v)
	return b
}

// Set validates value for key, stores it and saves the file.
func (s *Store) Set(key, value string) error {
	e, ok := s.schema.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	norm, err := e.Normalize(value)
	if err != nil {
		return err
	}
	section, name := splitKey(key)
	s.file.Section(section).Key(name).SetValue(norm)
	return s.Save()
}

// Reset removes the stored value of key so that its default applies, and saves the file.
func (s *Store) Reset(key string) error {
	if _, ok := s.schema.Lookup(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	section, name := splitKey(key)
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(name) {
		return nil
	}
	sec.DeleteKey(name)
	if section != ini.DefaultSection && len(sec.Keys()) == 0 {
		s.file.DeleteSection(section)
	}
	return s.Save()
}

// Save writes the file, creating its directory if needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := s.file.SaveTo(s.path); err != nil {
		return fmt.Errorf("save config %s: %w", s.path, err)
	}
	return nil
}
