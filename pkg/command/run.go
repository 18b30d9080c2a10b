package command

import (
	"context"
	"errors"
	"io"
	"os"
)

// ParseAndRun parses the command hierarchy and runs the command. A convenience function that
// combines [Parse] and [Run] into a single call.
func ParseAndRun(ctx context.Context, root *Command, args []string, options *RunOptions) error {
	if err := Parse(root, args); err != nil {
		return err
	}
	return Run(ctx, root, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard streams for the command. Nil streams default to
	// [os.Stdin], [os.Stdout], and [os.Stderr].
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes the command selected by the last [Parse] of root. A root command without an
// execution function prints its help to Stderr.
//
// The options parameter may be nil, in which case default values are used.
func Run(ctx context.Context, root *Command, options *RunOptions) error {
	if root == nil || root.selected == nil || root.selected.state == nil {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)
	selected := root.selected
	updateState(selected.state, options)

	if selected.Exec == nil {
		if selected == root {
			ShowHelp(selected, selected.state.Stderr)
			return nil
		}
		return &NoExecError{Command: selected}
	}
	return selected.Exec(ctx, selected.state)
}

func updateState(s *State, opt *RunOptions) {
	if s.Stdin == nil {
		s.Stdin = opt.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = opt.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = opt.Stderr
	}
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
