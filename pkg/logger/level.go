package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// CLI log levels, from most to least verbose.
const (
	LevelSilly   = slog.Level(-8)
	LevelDebug   = slog.LevelDebug
	LevelVerbose = slog.Level(-2)
	LevelInfo    = slog.LevelInfo
	LevelWarn    = slog.LevelWarn
	LevelError   = slog.LevelError
)

var levelNames = map[slog.Level]string{
	LevelSilly:   "silly",
	LevelDebug:   "debug",
	LevelVerbose: "verbose",
	LevelInfo:    "info",
	LevelWarn:    "warn",
	LevelError:   "error",
}

// ParseLevel maps a level name such as "verbose" to its level.
func ParseLevel(name string) (slog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// LevelName returns the CLI name of l. Levels between the named ones are shown relative to the
// nearest lower named level, like "info+1".
func LevelName(l slog.Level) string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	base := LevelSilly
	for named := range levelNames {
		if named <= l && named > base {
			base = named
		}
	}
	if l < base {
		return fmt.Sprintf("%s%d", levelNames[base], int(l-base))
	}
	return fmt.Sprintf("%s+%d", levelNames[base], int(l-base))
}
