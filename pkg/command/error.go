package command

import (
	"fmt"
	"strings"
)

// NoExecError is returned when a non-root command without an execution function is run.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.Path())
}

// UnknownCommandError is returned by [Parse] when a token in command position does not name a
// subcommand of Parent.
type UnknownCommandError struct {
	Name        string
	Parent      *Command
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	switch len(e.Suggestions) {
	case 0:
		return fmt.Sprintf("unknown command %q", e.Name)
	case 1:
		return fmt.Sprintf("unknown command %q. Did you mean %q?", e.Name, e.Suggestions[0])
	default:
		return fmt.Sprintf("unknown command %q. Did you mean one of these?\n\t%s",
			e.Name, strings.Join(e.Suggestions, "\n\t"))
	}
}

// ParseError reports a flag or argument problem found while parsing for Command.
type ParseError struct {
	Command *Command
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command.Path(), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
