package climax

import (
	"slices"

	"github.com/mfridman/climax/pkg/config"
)

// Registry owns the command catalog, config schema and global flags of an application.
type Registry struct {
	name    string
	banner  string
	version string

	commands []CommandSpec
	schema   config.Schema
	globals  []OptionSpec
}

// New returns a registry for the application name, seeded with the built-in defaults.
func New(name, banner string) *Registry {
	return &Registry{
		name:     name,
		banner:   banner,
		commands: DefaultCommands(),
		schema:   DefaultSchema(),
		globals:  DefaultGlobals(),
	}
}

// Initialize merges commands, config schema entries and global flags on top of the current
// tables. An entry with the same key as an existing one replaces it whole; other entries are
// appended. Calling Initialize again merges onto the already merged tables.
func (r *Registry) Initialize(commands []CommandSpec, schema []config.Entry, globals []OptionSpec) *Registry {
	r.commands = MergeCommands(r.commands, commands...)
	r.schema = r.schema.Merge(schema...)
	r.globals = MergeOptions(r.globals, globals...)
	return r
}

// SetBanner sets the text shown at the top of the main help.
func (r *Registry) SetBanner(banner string) *Registry {
	r.banner = banner
	return r
}

// SetName sets the application name. It names the config file and prefixes usage lines.
func (r *Registry) SetName(name string) *Registry {
	r.name = name
	return r
}

// SetVersion sets the version printed by -V and in the main help.
func (r *Registry) SetVersion(version string) *Registry {
	r.version = version
	return r
}

// Name returns the application name.
func (r *Registry) Name() string { return r.name }

// Commands returns a copy of the merged command catalog.
func (r *Registry) Commands() []CommandSpec { return slices.Clone(r.commands) }

// Schema returns a copy of the merged config schema.
func (r *Registry) Schema() config.Schema { return slices.Clone(r.schema) }

// Globals returns a copy of the merged global flags.
func (r *Registry) Globals() []OptionSpec { return slices.Clone(r.globals) }

func (r *Registry) versionString() string {
	if r.version == "" {
		return "unknown"
	}
	return r.version
}
