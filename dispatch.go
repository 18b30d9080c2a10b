package climax

import (
	"context"
	"errors"

	"github.com/mfridman/climax/pkg/command"
	"github.com/mfridman/climax/pkg/config"
	"github.com/mfridman/climax/pkg/logger"
)

func (inv *invocation) dispatcher(spec CommandSpec) func(context.Context, *command.State) error {
	return func(ctx context.Context, s *command.State) error {
		if code := inv.dispatch(ctx, spec, s); code != 0 {
			return &ExitError{Code: code}
		}
		return nil
	}
}

// dispatch resolves the runtime settings of the invocation, opens the config store, creates
// the logger and runs the handler of spec. It returns the exit code.
func (inv *invocation) dispatch(ctx context.Context, spec CommandSpec, s *command.State) int {
	count, _ := command.LookupFlag[int](s, FlagVerbose)
	quiet, _ := command.LookupFlag[bool](s, FlagQuiet)
	configFlag, _ := command.LookupFlag[string](s, FlagConfig)

	settings := Settings{
		Verbosity:  ResolveVerbosity(count, quiet),
		ConfigPath: ResolveConfigPath(inv.opts.ConfigDir, inv.registry.name, configFlag),
	}
	store, err := config.Open(settings.ConfigPath, inv.registry.schema)
	if err != nil {
		inv.boot.Error("failed to load config", "path", settings.ConfigPath, "error", err)
		return 1
	}

	var ansi *bool
	if s.Changed(FlagANSI) {
		v, _ := command.LookupFlag[bool](s, FlagANSI)
		ansi = &v
	}
	settings.Colors = ResolveColors(inv.tty, ansi, store.Bool(KeyColors))
	settings.Timestamp = store.Bool(KeyTimestamp)
	settings.LogFile = store.String(KeyLogFile)
	settings.LogLevel = store.String(KeyLogLevel)
	inv.style.enabled = settings.Colors

	log, err := logger.New(logger.Options{
		Console:   s.Stderr,
		Verbosity: settings.Verbosity,
		File:      settings.LogFile,
		Level:     settings.LogLevel,
		Timestamp: settings.Timestamp,
		Colorize:  settings.Colors,
	})
	if err != nil {
		inv.boot.Error("failed to create logger", "error", err)
		return 1
	}
	defer log.Close()

	rt := &Runtime{
		AppName:   inv.registry.name,
		ConfigDir: inv.opts.ConfigDir,
		Settings:  settings,
		Config:    store,
		Logger:    log,
		Stdin:     s.Stdin,
		Stdout:    s.Stdout,
		Stderr:    s.Stderr,
		style:     inv.style,
	}
	log.Debug("dispatching command", "command", s.Command().Path(), "args", s.Args, "config", settings.ConfigPath)

	switch {
	case spec.Handler != nil:
		err := spec.Handler(rt).Execute(ctx, s)
		if err == nil {
			return 0
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				log.Error(exitErr.Err.Error())
			}
			return exitErr.Code
		}
		log.Error(err.Error())
		return 1
	case spec.Func != nil:
		return spec.Func(ctx, rt, s)
	default:
		inv.showHelp(s.Command(), s.Stderr)
		return 0
	}
}
