package climax

import "github.com/mfridman/climax/pkg/config"

// Config keys read by the framework itself.
const (
	KeyColors           = "cli.colors"
	KeyProgressBars     = "cli.progressBars"
	KeyProgressInterval = "cli.progressInterval"
	KeyTimestamp        = "cli.timestamp"
	KeyJSONPretty       = "json.pretty"
	KeyLogFile          = "log.file"
	KeyLogLevel         = "log.level"
)

// Global flag names read by the framework itself.
const (
	FlagHelp    = "help"
	FlagVerbose = "verbose"
	FlagQuiet   = "quiet"
	FlagVersion = "version"
	FlagANSI    = "ansi"
	FlagConfig  = "config"
)

const (
	groupFlags       = "Flags:"
	groupGlobalFlags = "Global Flags:"
)

// DefaultCommands returns the built-in commands.
func DefaultCommands() []CommandSpec {
	return []CommandSpec{
		{
			Name:  "config",
			Usage: "[flags] [key] [value]",
			Desc:  "Read, write, and reset config values",
			Options: []OptionSpec{{
				Name:  "reset",
				Short: "r",
				Group: groupFlags,
				Desc:  "Reset the config option to its default value",
				Type:  Boolean,
			}},
			Handler: newConfigCommand,
		},
		{
			Name:    "delete-everything",
			Desc:    "Remove all files and folders related to the CLI",
			Handler: newDeleteEverythingCommand,
		},
	}
}

// DefaultSchema returns the built-in config schema.
func DefaultSchema() config.Schema {
	return config.Schema{
		config.Bool(KeyColors, true),
		config.Bool(KeyProgressBars, true),
		config.String(KeyProgressInterval, "250"),
		config.Bool(KeyTimestamp, false),
		config.Bool(KeyJSONPretty, false),
		config.String(KeyLogFile, ""),
		config.Choice(KeyLogLevel, "info", "info", "verbose", "debug", "silly"),
	}
}

// DefaultGlobals returns the built-in global flags.
func DefaultGlobals() []OptionSpec {
	return []OptionSpec{
		{Name: FlagHelp, Short: "h", Group: groupGlobalFlags, Desc: "Show help", Type: Boolean},
		{Name: FlagVerbose, Short: "v", Group: groupGlobalFlags, Desc: "Output verbosity (-v, -vv, -vvv)", Type: Count},
		{Name: FlagQuiet, Short: "q", Group: groupGlobalFlags, Desc: "Suppress all output", Type: Boolean},
		{Name: FlagVersion, Short: "V", Group: groupGlobalFlags, Desc: "Show version number", Type: Boolean},
		{Name: FlagANSI, Group: groupGlobalFlags, Desc: "Control color output", Type: Boolean},
		{Name: FlagConfig, Group: groupGlobalFlags, Desc: "Specify location of config file", Type: String},
	}
}
