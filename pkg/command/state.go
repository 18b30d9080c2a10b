package command

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

// State is the result of parsing, shared by every command on the selected path. Use [GetFlag] to
// read flag values by name.
type State struct {
	// Args contains the positional arguments after the command names, including everything after
	// a "--" delimiter.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	flags       *pflag.FlagSet
	commandPath []*Command
}

// Command returns the terminal command of the parsed path.
func (s *State) Command() *Command {
	if len(s.commandPath) == 0 {
		return nil
	}
	return s.commandPath[len(s.commandPath)-1]
}

// Changed reports whether the named flag was given on the command line.
func (s *State) Changed(name string) bool {
	if s.flags == nil {
		return false
	}
	f := s.flags.Lookup(name)
	return f != nil && f.Changed
}

// GetFlag retrieves a flag value by name. Flags of every command on the parsed path are
// visible. Example usage:
//
//	verbose := GetFlag[int](state, "verbose") // count flag
//	quiet := GetFlag[bool](state, "quiet")
//	path := GetFlag[string](state, "config")
//
// GetFlag panics if the flag does not exist or T does not match its type: either is a mistake in
// the program, not in the user's input.
func GetFlag[T any](s *State, name string) T {
	v, err := lookupFlag[T](s, name)
	if err != nil {
		panic(err)
	}
	return v
}

// LookupFlag is like [GetFlag] but reports a missing or mistyped flag with ok=false instead of
// panicking.
func LookupFlag[T any](s *State, name string) (v T, ok bool) {
	v, err := lookupFlag[T](s, name)
	return v, err == nil
}

func lookupFlag[T any](s *State, name string) (T, error) {
	var zero T
	var f *pflag.Flag
	if s != nil && s.flags != nil {
		f = s.flags.Lookup(name)
	}
	if f == nil {
		cmdName := ""
		if s != nil {
			if c := s.Command(); c != nil {
				cmdName = c.Path()
			}
		}
		return zero, fmt.Errorf("internal error: flag %q not found in command %q flag set", "--"+name, cmdName)
	}
	value, err := flagValue(f)
	if err != nil {
		return zero, fmt.Errorf("internal error: flag %q: %w", "--"+name, err)
	}
	if v, ok := value.(T); ok {
		return v, nil
	}
	return zero, fmt.Errorf("internal error: type mismatch for flag %q: registered %s, requested %T",
		"--"+name, f.Value.Type(), zero)
}

func flagValue(f *pflag.Flag) (any, error) {
	switch f.Value.Type() {
	case "bool":
		return strconv.ParseBool(f.Value.String())
	case "int", "count":
		return strconv.Atoi(f.Value.String())
	case "stringSlice", "stringArray":
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			return sv.GetSlice(), nil
		}
	}
	return f.Value.String(), nil
}
