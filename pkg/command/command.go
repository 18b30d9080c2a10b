package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mfridman/climax/pkg/suggest"
)

// GroupAnnotation is the [pflag.Flag] annotation key holding the help section a flag is listed
// under, for example "Global Flags:".
const GroupAnnotation = "climax_group"

// Command is a node in the command tree.
type Command struct {
	// Name is a single word identifying the command on the command line.
	Name string

	// Usage is the usage pattern shown after the "Usage:" label.
	//
	// Example: "config [flags] [key] [value]"
	Usage string

	// ShortHelp is a one line description, shown in the parent's command list and at the top of
	// this command's help.
	ShortHelp string

	// Header is printed verbatim at the top of the help output, before ShortHelp. Useful for a
	// multi-line banner on the root command.
	Header string

	// UsageFunc, if set, replaces [DefaultUsage] for this command.
	UsageFunc func(*Command) string

	// Heading styles section labels such as "Usage:" and "Commands:". Only the root command's
	// Heading is consulted. Nil leaves labels unstyled.
	Heading func(string) string

	// Flags holds the flags owned by this command. They are inherited by every subcommand.
	Flags *pflag.FlagSet
	// FlagsMetadata extends Flags with per-flag metadata such as whether a flag is required.
	FlagsMetadata []FlagMetadata

	// MinArgs is the minimum number of positional arguments the command accepts.
	MinArgs int

	// SubCommands are the commands nested under this one, in display order.
	SubCommands []*Command

	// Exec runs the command. A root command without Exec prints its help.
	Exec func(ctx context.Context, s *State) error

	state    *State
	selected *Command
}

// FlagMetadata holds additional metadata for a flag.
type FlagMetadata struct {
	// Name is the flag's long name and must exist in the command's flag set.
	Name string

	// Required reports whether the flag must be given on the command line.
	Required bool
}

// FlagsFunc creates a new [pflag.FlagSet] and applies fn to it. Example:
//
//	cmd.Flags = command.FlagsFunc(func(f *pflag.FlagSet) {
//	    f.BoolP("force", "f", false, "overwrite existing files")
//	    f.String("output", "", "output file")
//	})
func FlagsFunc(fn func(*pflag.FlagSet)) *pflag.FlagSet {
	fset := pflag.NewFlagSet("", pflag.ContinueOnError)
	fset.SortFlags = false
	fn(fset)
	return fset
}

// Selected returns the command chosen by the last [Parse] of this root, or nil.
func (c *Command) Selected() *Command {
	return c.selected
}

// State returns the state populated by [Parse]. It is nil until the command has been parsed.
func (c *Command) State() *State {
	return c.state
}

// Path returns the space separated names from the root to this command, as determined by the
// last parse. Before parsing it is just the command's name.
func (c *Command) Path() string {
	if c.state == nil || len(c.state.commandPath) == 0 {
		return c.Name
	}
	return getCommandPath(c.state.commandPath)
}

func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (c *Command) unknownCommand(name string) error {
	known := make([]string, 0, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		known = append(known, sub.Name)
	}
	return &UnknownCommandError{
		Name:        name,
		Parent:      c,
		Suggestions: suggest.FindSimilar(name, known, 3),
	}
}

func (c *Command) heading(label string) string {
	root := c
	if c.state != nil && len(c.state.commandPath) > 0 {
		root = c.state.commandPath[0]
	}
	if root.Heading == nil {
		return label
	}
	return root.Heading(label)
}

func getCommandPath(commands []*Command) string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

func flagGroup(f *pflag.Flag, fallback string) string {
	if g := f.Annotations[GroupAnnotation]; len(g) > 0 && g[0] != "" {
		return g[0]
	}
	return fallback
}

// SetGroup records the help section for the named flag in fs.
func SetGroup(fs *pflag.FlagSet, name, group string) error {
	if group == "" {
		return nil
	}
	if err := fs.SetAnnotation(name, GroupAnnotation, []string{group}); err != nil {
		return fmt.Errorf("set group for flag %q: %w", name, err)
	}
	return nil
}
