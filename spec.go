package climax

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/mfridman/climax/pkg/command"
)

// OptionType is the kind of value a flag holds.
type OptionType string

const (
	Boolean OptionType = "boolean"
	String  OptionType = "string"
	Count   OptionType = "count"
	Choice  OptionType = "choice"
)

// OptionSpec describes one flag.
type OptionSpec struct {
	// Name is the long flag name, used as --name. It is the merge key.
	Name string
	// Short is the optional single letter shorthand, used as -s.
	Short string
	// Group is the help section the flag is listed under, like "Flags:".
	Group string
	// Demand makes the flag required.
	Demand bool
	Desc   string
	Type   OptionType
	// Choices lists the accepted values of a Choice flag.
	Choices []string
	// Default is the textual default, parsed according to Type.
	Default string
	Hidden  bool
}

func (o OptionSpec) define(fs *pflag.FlagSet) error {
	switch o.Type {
	case Boolean, "":
		def := false
		if o.Default != "" {
			b, err := strconv.ParseBool(o.Default)
			if err != nil {
				return fmt.Errorf("option %q: invalid boolean default %q", o.Name, o.Default)
			}
			def = b
		}
		fs.BoolP(o.Name, o.Short, def, o.Desc)
	case String:
		fs.StringP(o.Name, o.Short, o.Default, o.Desc)
	case Count:
		fs.CountP(o.Name, o.Short, o.Desc)
	case Choice:
		if o.Default != "" && !slices.Contains(o.Choices, o.Default) {
			return fmt.Errorf("option %q: default %q is not one of its choices", o.Name, o.Default)
		}
		fs.VarP(command.NewChoiceValue(o.Default, o.Choices), o.Name, o.Short, o.Desc)
	default:
		return fmt.Errorf("option %q: unsupported type %q", o.Name, o.Type)
	}
	if err := command.SetGroup(fs, o.Name, o.Group); err != nil {
		return err
	}
	if o.Hidden {
		return fs.MarkHidden(o.Name)
	}
	return nil
}

// CommandSpec describes one command.
type CommandSpec struct {
	// Name is the word that selects the command. It is the merge key.
	Name string
	// Usage is appended to the name on the help usage line, like "[flags] [key] [value]".
	Usage string
	Desc  string
	// Options are the command's own flags.
	Options []OptionSpec
	// Demand is the minimum number of positional arguments.
	Demand int
	// Handler constructs the command's handler. It takes precedence over Func.
	Handler Factory
	// Func is an inline handler whose result is the exit code.
	Func Func
	// Commands are nested subcommands.
	Commands []CommandSpec
}

// MergeCommands returns base with overrides applied: an override replaces the whole command with
// the same name in place, new names are appended in order. Neither input is modified.
func MergeCommands(base []CommandSpec, overrides ...CommandSpec) []CommandSpec {
	return mergeByKey(base, overrides, func(c CommandSpec) string { return c.Name })
}

// MergeOptions is [MergeCommands] for flags, keyed by name.
func MergeOptions(base []OptionSpec, overrides ...OptionSpec) []OptionSpec {
	return mergeByKey(base, overrides, func(o OptionSpec) string { return o.Name })
}

func mergeByKey[T any](base, overrides []T, key func(T) string) []T {
	merged := slices.Clone(base)
	for _, o := range overrides {
		k := key(o)
		if i := slices.IndexFunc(merged, func(e T) bool { return key(e) == k }); i >= 0 {
			merged[i] = o
			continue
		}
		merged = append(merged, o)
	}
	return merged
}
