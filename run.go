package climax

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mfridman/climax/pkg/command"
	"github.com/mfridman/climax/pkg/logger"
)

// RunOptions specifies options for [Registry.Run]. A nil *RunOptions uses the defaults.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard streams. Nil streams default to [os.Stdin],
	// [os.Stdout], and [os.Stderr].
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// ConfigDir overrides the platform config directory of the application.
	ConfigDir string

	// IsTerminal reports whether a stream is a terminal. Defaults to [IsTerminal].
	IsTerminal func(io.Writer) bool
}

func (r *Registry) checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	var o RunOptions
	if opt != nil {
		o = *opt
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.ConfigDir == "" {
		o.ConfigDir = ConfigDir(r.name)
	}
	if o.IsTerminal == nil {
		o.IsTerminal = IsTerminal
	}
	return &o
}

// invocation holds the state of a single Run.
type invocation struct {
	registry *Registry
	opts     *RunOptions
	tty      bool
	style    *styler
	boot     *logger.Logger
	root     *command.Command
}

// Main runs the application with the process arguments and exits with the resulting code.
// SIGINT and SIGTERM cancel the context passed to handlers.
func (r *Registry) Main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := r.Run(ctx, os.Args[1:], nil)
	stop()
	os.Exit(code)
}

// Run parses args, dispatches the matched command and returns the process exit code.
func (r *Registry) Run(ctx context.Context, args []string, opts *RunOptions) int {
	opts = r.checkAndSetRunOptions(opts)
	tty := opts.IsTerminal(opts.Stdout)
	inv := &invocation{
		registry: r,
		opts:     opts,
		tty:      tty,
		style:    &styler{enabled: tty},
	}
	inv.boot = logger.Console(opts.Stderr, tty)

	root, err := inv.buildRoot()
	if err != nil {
		inv.boot.Error(err.Error())
		return 1
	}
	inv.root = root

	err = command.Parse(root, args)
	inv.applyANSI()
	switch {
	case errors.Is(err, command.ErrHelp):
		inv.showHelp(inv.selected(), opts.Stdout)
		return 0
	case err != nil:
		return inv.fail(err)
	}

	if version, _ := command.LookupFlag[bool](root.State(), FlagVersion); version {
		fmt.Fprintf(opts.Stdout, "%s version %s\n", r.name, r.versionString())
		return 0
	}

	err = command.Run(ctx, root, &command.RunOptions{
		Stdin:  opts.Stdin,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	return exitCode(err)
}

func (inv *invocation) buildRoot() (*command.Command, error) {
	r := inv.registry
	fs, _, err := flagSet(r.name, r.globals)
	if err != nil {
		return nil, fmt.Errorf("global flags: %w", err)
	}
	root := &command.Command{
		Name:    r.name,
		Usage:   r.name + " command [flags] [options] [arguments]",
		Heading: inv.style.label,
		Flags:   fs,
	}
	root.Exec = func(_ context.Context, s *command.State) error {
		inv.showHelp(root, s.Stderr)
		return nil
	}
	globals, err := mergeShorthands(nil, fs)
	if err != nil {
		return nil, fmt.Errorf("global flags: %w", err)
	}
	if err := inv.registerTree(r.commands, root, r.name, globals); err != nil {
		return nil, err
	}
	return root, nil
}

// header renders the banner and version line with the current color setting.
func (inv *invocation) header() string {
	r := inv.registry
	line := inv.style.apply("accent", r.name) + " version " + inv.style.label(r.versionString())
	if r.banner == "" {
		return line
	}
	return inv.style.apply("accent", r.banner) + "\n" + line
}

func (inv *invocation) showHelp(c *command.Command, w io.Writer) {
	inv.root.Header = inv.header()
	command.ShowHelp(c, w)
}

func (inv *invocation) selected() *command.Command {
	if c := inv.root.Selected(); c != nil {
		return c
	}
	return inv.root
}

// applyANSI honors an explicit --ansi on a terminal, before the config store is opened.
func (inv *invocation) applyANSI() {
	s := inv.root.State()
	if !inv.tty || s == nil || !s.Changed(FlagANSI) {
		return
	}
	inv.style.enabled, _ = command.LookupFlag[bool](s, FlagANSI)
}

// fail shows the help of the command that failed to parse on stderr and logs the reason.
func (inv *invocation) fail(err error) int {
	c := inv.selected()
	msg := err.Error()
	var parseErr *command.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Command != nil {
			c = parseErr.Command
		}
		msg = parseErr.Err.Error()
	}
	inv.showHelp(c, inv.opts.Stderr)
	inv.boot.Error(msg)
	return 1
}
