package climax

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Wessie/appdirs"
	"golang.org/x/term"
)

// Verbosity levels resolved from the command line.
const (
	VerbosityError   = "error"
	VerbosityInfo    = "info"
	VerbosityVerbose = "verbose"
	VerbosityDebug   = "debug"
	VerbositySilly   = "silly"
)

// Settings are the runtime settings of one invocation, resolved from command-line flags, the
// config file and defaults, in that order of precedence.
type Settings struct {
	Verbosity  string
	ConfigPath string
	Colors     bool
	Timestamp  bool
	LogFile    string
	LogLevel   string
}

// ResolveVerbosity maps the -v count to a verbosity: 0 info, 1 verbose, 2 debug, 3 and more
// silly. quiet forces error.
func ResolveVerbosity(count int, quiet bool) string {
	switch {
	case quiet:
		return VerbosityError
	case count >= 3:
		return VerbositySilly
	case count == 2:
		return VerbosityDebug
	case count == 1:
		return VerbosityVerbose
	default:
		return VerbosityInfo
	}
}

// ResolveConfigPath returns flagPath when set, otherwise "<configDir>/<appName>.ini".
func ResolveConfigPath(configDir, appName, flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return filepath.Join(configDir, appName+".ini")
}

// ResolveColors decides whether output is colored. On a terminal an explicit --ansi wins (ansi
// is nil when the flag was not given); otherwise colors follow the stored setting. Output that is
// not a terminal is never colored.
func ResolveColors(tty bool, ansi *bool, stored bool) bool {
	if !tty {
		return false
	}
	if ansi != nil {
		return *ansi
	}
	return stored
}

// ConfigDir returns the platform config directory of appName.
func ConfigDir(appName string) string {
	return appdirs.UserConfigDir(appName, "", "", false)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
