package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// ErrHelp is returned by [Parse] when -h or --help appears before the "--" delimiter. The command
// whose help was requested is available from the root's [Command.Selected].
var ErrHelp = pflag.ErrHelp

// Parse walks the command tree along args, selects the deepest matching command and parses flags
// for the selected path. It should be called with the root command and the arguments without the
// program name, typically os.Args[1:]. Once parsing is complete the root is ready for [Run].
//
// Parse may be called repeatedly on the same tree; flags on the selected path are reset to their
// defaults first.
func Parse(root *Command, args []string) error {
	if root == nil {
		return errors.New("failed to parse: root command is nil")
	}
	if err := validateCommands(root, nil); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	argsToParse, remainingArgs := args, []string(nil)
	for i, arg := range args {
		if arg == "--" {
			argsToParse, remainingArgs = args[:i], args[i+1:]
			break
		}
	}

	// The walk set only needs to know which flags consume the next token so that flag values are
	// never mistaken for command names.
	walk := newFlagSet(root.Name)
	if err := addFlags(walk, root); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	current := root
	chain := []*Command{root}
	help := false
	descend := true
	var walkErr error
	for i := 0; i < len(argsToParse); i++ {
		arg := argsToParse[i]
		if arg == "-h" || arg == "--help" {
			help = true
			break
		}
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			if takesValue(walk, arg) {
				i++
			}
			continue
		}
		if !descend || len(current.SubCommands) == 0 {
			descend = false
			continue
		}
		sub := current.findSubCommand(arg)
		if sub == nil {
			if current == root {
				walkErr = current.unknownCommand(arg)
				break
			}
			descend = false
			continue
		}
		if err := addFlags(walk, sub); err != nil {
			return fmt.Errorf("failed to parse: %w", err)
		}
		current = sub
		chain = append(chain, sub)
	}

	state := &State{commandPath: chain}
	for _, c := range chain {
		c.state = state
	}
	root.selected = current
	if walkErr != nil {
		return walkErr
	}
	if help {
		return ErrHelp
	}

	// Deeper commands are added first so their flags shadow same-named ones of their parents.
	combined := newFlagSet(current.Name)
	for i := len(chain) - 1; i >= 0; i-- {
		resetFlags(chain[i].Flags)
		if err := addFlags(combined, chain[i]); err != nil {
			return fmt.Errorf("failed to parse: %w", err)
		}
	}
	state.flags = combined

	if err := combined.Parse(argsToParse); err != nil {
		return &ParseError{Command: current, Err: err}
	}
	// Help inside a shorthand cluster such as -vh is only seen by the flag set.
	if f := combined.Lookup("help"); f != nil && f.Changed && f.Value.String() == "true" {
		return ErrHelp
	}

	var missing []string
	for _, meta := range current.FlagsMetadata {
		if !meta.Required {
			continue
		}
		f := combined.Lookup(meta.Name)
		if f == nil {
			return &ParseError{
				Command: current,
				Err:     fmt.Errorf("internal error: required flag --%s not found in flag set", meta.Name),
			}
		}
		if !f.Changed {
			missing = append(missing, "--"+meta.Name)
		}
	}
	if len(missing) > 0 {
		return &ParseError{
			Command: current,
			Err:     fmt.Errorf("required flag(s) %q not set", strings.Join(missing, ", ")),
		}
	}

	// The leading positionals are the command names consumed by the walk above.
	parsed := combined.Args()
	skip := min(len(chain)-1, len(parsed))
	var finalArgs []string
	finalArgs = append(finalArgs, parsed[skip:]...)
	finalArgs = append(finalArgs, remainingArgs...)
	state.Args = finalArgs

	if len(finalArgs) < current.MinArgs {
		return &ParseError{
			Command: current,
			Err: fmt.Errorf("not enough non-option arguments: got %d, need at least %d",
				len(finalArgs), current.MinArgs),
		}
	}
	return nil
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// addFlags copies the flag definitions of cmd into dst, skipping names already present.
func addFlags(dst *pflag.FlagSet, cmd *Command) error {
	if cmd.Flags == nil {
		cmd.Flags = newFlagSet(cmd.Name)
	}
	var err error
	cmd.Flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || dst.Lookup(f.Name) != nil {
			return
		}
		if f.Shorthand != "" {
			if other := dst.ShorthandLookup(f.Shorthand); other != nil {
				err = fmt.Errorf("command %q: shorthand -%s of --%s is already used by --%s",
					cmd.Name, f.Shorthand, f.Name, other.Name)
				return
			}
		}
		dst.AddFlag(f)
	})
	return err
}

// takesValue reports whether the flag token arg consumes the following argument as its value.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.HasPrefix(arg, "--") {
		name := arg[2:]
		if strings.Contains(name, "=") {
			return false
		}
		f := fs.Lookup(name)
		return f != nil && f.NoOptDefVal == ""
	}
	shorthands := arg[1:]
	for i := 0; i < len(shorthands); i++ {
		f := fs.ShorthandLookup(shorthands[i : i+1])
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			// The rest of the cluster is the value, if there is any.
			return i == len(shorthands)-1
		}
	}
	return false
}

func resetFlags(fs *pflag.FlagSet) {
	if fs == nil {
		return
	}
	fs.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var def []string
			if trimmed := strings.Trim(f.DefValue, "[]"); trimmed != "" {
				def = strings.Split(trimmed, ",")
			}
			_ = sv.Replace(def)
		} else if cv, ok := f.Value.(*ChoiceValue); ok {
			cv.reset()
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func validateCommands(root *Command, path []string) error {
	if root.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.ContainsAny(root.Name, " \t") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", root.Name)
	}

	currentPath := append(path, root.Name)
	seen := make(map[string]bool, len(root.SubCommands))
	for _, sub := range root.SubCommands {
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
		key := strings.ToLower(sub.Name)
		if seen[key] {
			return fmt.Errorf("duplicate command %q in path %q", sub.Name, strings.Join(currentPath, " "))
		}
		seen[key] = true
	}
	return nil
}
