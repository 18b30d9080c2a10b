package climax

import (
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mfridman/climax/pkg/command"
)

// registerTree adds an engine command under parent for every spec, in order, recursing into
// nested commands. prefix is the command path of parent, shown in front of usage lines.
// inherited maps the shorthands of the flags visible from parent to their long names.
func (inv *invocation) registerTree(specs []CommandSpec, parent *command.Command, prefix string, inherited map[string]string) error {
	for _, spec := range specs {
		fs, meta, err := flagSet(spec.Name, spec.Options)
		if err != nil {
			return fmt.Errorf("command %q: %w", spec.Name, err)
		}
		shorthands, err := mergeShorthands(inherited, fs)
		if err != nil {
			return fmt.Errorf("command %q: %w", spec.Name, err)
		}
		path := prefix + " " + spec.Name
		cmd := &command.Command{
			Name:          spec.Name,
			Usage:         strings.TrimSpace(path + " " + spec.Usage),
			ShortHelp:     spec.Desc,
			Flags:         fs,
			FlagsMetadata: meta,
			MinArgs:       spec.Demand,
			Exec:          inv.dispatcher(spec),
		}
		if len(spec.Commands) > 0 {
			if err := inv.registerTree(spec.Commands, cmd, path, shorthands); err != nil {
				return err
			}
		}
		parent.SubCommands = append(parent.SubCommands, cmd)
	}
	return nil
}

func flagSet(name string, options []OptionSpec) (*pflag.FlagSet, []command.FlagMetadata, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	var meta []command.FlagMetadata
	for _, opt := range options {
		if fs.Lookup(opt.Name) != nil {
			return nil, nil, fmt.Errorf("option %q defined twice", opt.Name)
		}
		if len(opt.Short) > 1 {
			return nil, nil, fmt.Errorf("option %q: shorthand %q is more than one character", opt.Name, opt.Short)
		}
		if opt.Short != "" && fs.ShorthandLookup(opt.Short) != nil {
			return nil, nil, fmt.Errorf("option %q: shorthand -%s already in use", opt.Name, opt.Short)
		}
		if err := opt.define(fs); err != nil {
			return nil, nil, err
		}
		if opt.Demand {
			meta = append(meta, command.FlagMetadata{Name: opt.Name, Required: true})
		}
	}
	return fs, meta, nil
}

// mergeShorthands returns inherited plus the shorthands of fs. A shorthand already taken by a
// differently named flag of an ancestor is an error.
func mergeShorthands(inherited map[string]string, fs *pflag.FlagSet) (map[string]string, error) {
	merged := maps.Clone(inherited)
	if merged == nil {
		merged = make(map[string]string)
	}
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Shorthand == "" || err != nil {
			return
		}
		if owner, ok := inherited[f.Shorthand]; ok && owner != f.Name {
			err = fmt.Errorf("option %q: shorthand -%s already used by --%s", f.Name, f.Shorthand, owner)
			return
		}
		merged[f.Shorthand] = f.Name
	})
	return merged, err
}
