// Package config is the settings store of a climax application: a typed schema of dotted keys
// with defaults, persisted as an INI file where key "section.name" lives in section [section].
package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrUnknownKey is returned for keys that are not part of the schema.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a value does not fit the type of its key.
	ErrInvalidValue = errors.New("invalid config value")
)

// Type is the value type of a schema entry.
type Type string

const (
	TypeBool   Type = "bool"
	TypeString Type = "string"
	TypeChoice Type = "choice"
)

var (
	// TrueValues are the accepted spellings of a true bool value.
	TrueValues = []string{"1", "yes", "true", "on"}
	// FalseValues are the accepted spellings of a false bool value.
	FalseValues = []string{"0", "no", "false", "off"}
)

// Entry describes one config key. Build entries with [Bool], [String] and [Choice] so that the
// default always matches the type.
type Entry struct {
	Key     string
	Type    Type
	Default string
	Choices []string
}

// Bool returns a boolean entry.
func Bool(key string, def bool) Entry {
	return Entry{Key: key, Type: TypeBool, Default: strconv.FormatBool(def)}
}

// String returns a free-form string entry.
func String(key, def string) Entry {
	return Entry{Key: key, Type: TypeString, Default: def}
}

// Choice returns an entry restricted to choices.
func Choice(key, def string, choices ...string) Entry {
	return Entry{Key: key, Type: TypeChoice, Default: def, Choices: slices.Clone(choices)}
}

// Normalize checks value against the entry's type and returns its canonical form: bools become
// "true" or "false", everything else is returned unchanged.
func (e Entry) Normalize(value string) (string, error) {
	switch e.Type {
	case TypeBool:
		b, ok := ParseBool(value)
		if !ok {
			return "", fmt.Errorf("%w: %q for %s: expected one of %s", ErrInvalidValue, value, e.Key,
				strings.Join(append(slices.Clone(TrueValues), FalseValues...), ", "))
		}
		return strconv.FormatBool(b), nil
	case TypeString:
		return value, nil
	case TypeChoice:
		if !slices.Contains(e.Choices, value) {
			return "", fmt.Errorf("%w: %q for %s: expected one of %s", ErrInvalidValue, value, e.Key,
				strings.Join(e.Choices, ", "))
		}
		return value, nil
	default:
		return "", fmt.Errorf("%s: unsupported type %q", e.Key, e.Type)
	}
}

// ParseBool interprets s using [TrueValues] and [FalseValues], case-insensitively.
func ParseBool(s string) (value, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case slices.Contains(TrueValues, s):
		return true, true
	case slices.Contains(FalseValues, s):
		return false, true
	}
	return false, false
}

// Schema is an ordered list of entries with unique keys.
type Schema []Entry

// Lookup returns the entry for key.
func (s Schema) Lookup(key string) (Entry, bool) {
	i := slices.IndexFunc(s, func(e Entry) bool { return e.Key == key })
	if i < 0 {
		return Entry{}, false
	}
	return s[i], true
}

// Keys returns the schema keys in order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}
	return keys
}

// Merge returns a new schema with overrides applied: an override replaces the entry with the
// same key in place, other overrides are appended in order. s is not modified.
func (s Schema) Merge(overrides ...Entry) Schema {
	merged := slices.Clone(s)
	for _, o := range overrides {
		if i := slices.IndexFunc(merged, func(e Entry) bool { return e.Key == o.Key }); i >= 0 {
			merged[i] = o
			continue
		}
		merged = append(merged, o)
	}
	return merged
}

// Validate reports empty or duplicate keys and defaults that do not fit their type.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s))
	var errs []error
	for _, e := range s {
		if strings.TrimSpace(e.Key) == "" {
			errs = append(errs, errors.New("schema entry with empty key"))
			continue
		}
		if seen[e.Key] {
			errs = append(errs, fmt.Errorf("duplicate schema key %q", e.Key))
		}
		seen[e.Key] = true
		if _, err := e.Normalize(e.Default); err != nil {
			errs = append(errs, fmt.Errorf("default of %s: %w", e.Key, err))
		}
	}
	return errors.Join(errs...)
}
