package climax

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mfridman/climax/pkg/command"
	"github.com/mfridman/climax/pkg/config"
	"github.com/mfridman/climax/pkg/logger"
)

// Runtime is everything a handler needs for one invocation. It is created by the registry right
// before the handler runs and is not shared between invocations.
type Runtime struct {
	AppName   string
	ConfigDir string
	Settings  Settings
	Config    *config.Store
	Logger    *logger.Logger

	Stdin          io.Reader
	Stdout, Stderr io.Writer

	style *styler
}

// Style applies the named style ("label", "accent" or "error") when colors are enabled.
func (rt *Runtime) Style(name, s string) string {
	return rt.style.apply(name, s)
}

// PrintJSON writes v to Stdout as JSON, indented when json.pretty is set.
func (rt *Runtime) PrintJSON(v any) error {
	var (
		data []byte
		err  error
	)
	if rt.Config != nil && rt.Config.Bool(KeyJSONPretty) {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(rt.Stdout, string(data))
	return err
}

// Handler does the work of a command. s carries the positional arguments after the command name
// and the parsed flags.
type Handler interface {
	Execute(ctx context.Context, s *command.State) error
}

// HandlerFunc adapts a function to [Handler].
type HandlerFunc func(ctx context.Context, s *command.State) error

func (f HandlerFunc) Execute(ctx context.Context, s *command.State) error {
	return f(ctx, s)
}

// Factory builds the handler of a command for one invocation.
type Factory func(rt *Runtime) Handler

// Func is an inline command handler. The returned int is the process exit code.
type Func func(ctx context.Context, rt *Runtime, s *command.State) int

// ExitError ends an invocation with a specific exit code. Handlers return it through [Exit].
type ExitError struct {
	Code int
	Err  error
}

// Exit returns an error that makes the process exit with code. err may be nil.
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode maps a handler result to an exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
