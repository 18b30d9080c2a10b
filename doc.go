// Package climax is a micro-framework for multi-command command-line applications.
//
// A [Registry] holds the command catalog, the config schema and the global flags. It starts
// from built-in defaults (the config and delete-everything commands, the cli/json/log config
// keys and the -h, -v, -q, -V, --ansi and --config flags) and merges the application's own
// definitions on top with [Registry.Initialize]:
//
//	climax.New("notes", "Notes - keep small notes").
//		SetVersion("1.0.0").
//		Initialize([]climax.CommandSpec{{
//			Name:    "add",
//			Usage:   "[text...]",
//			Desc:    "Add a note",
//			Handler: newAddHandler,
//		}}, nil, nil).
//		Main()
//
// For every invocation the registry resolves verbosity, the config file path and the color
// policy, opens the config [config.Store], creates a [logger.Logger] and hands all of it to the
// matched command as a [Runtime]. Handlers never reach for global state.
package climax
