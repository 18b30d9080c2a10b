package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]slog.Level{
		"silly":   LevelSilly,
		"debug":   LevelDebug,
		"verbose": LevelVerbose,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"ERROR":   LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestLevelName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "verbose", LevelName(LevelVerbose))
	assert.Equal(t, "info+1", LevelName(LevelInfo+1))
	assert.Equal(t, "silly-2", LevelName(LevelSilly-2))
}

func TestConsoleVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbosity string
		want      []string
	}{
		{verbosity: "error", want: []string{"error: e"}},
		{verbosity: "info", want: []string{"info: i", "error: e"}},
		{verbosity: "verbose", want: []string{"verbose: v", "info: i", "error: e"}},
		{verbosity: "debug", want: []string{"debug: d", "verbose: v", "info: i", "error: e"}},
		{verbosity: "silly", want: []string{"silly: s", "debug: d", "verbose: v", "info: i", "error: e"}},
	}
	for _, tt := range tests {
		t.Run(tt.verbosity, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(Options{Console: &buf, Verbosity: tt.verbosity})
			require.NoError(t, err)
			log.Silly("s")
			log.Debug("d")
			log.Verbose("v")
			log.Info("i")
			log.Error("e")
			require.NoError(t, log.Close())
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", buf.String())
		})
	}
}

func TestConsoleFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Console: &buf, Verbosity: "info"})
	require.NoError(t, err)
	log.With("cmd", "config").WithGroup("req").Info("saved value", "key", "cli.colors", "note", "two words")
	assert.Equal(t, "info: saved value cmd=config req.key=cli.colors req.note=\"two words\"\n", buf.String())

	buf.Reset()
	log, err = New(Options{Console: &buf, Verbosity: "info", Timestamp: true})
	require.NoError(t, err)
	log.Info("hello")
	line := buf.String()
	assert.True(t, strings.HasSuffix(line, " info: hello\n"), line)
	assert.NotEqual(t, "info: hello\n", line)
}

func TestFileLevelIsIndependent(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	log, err := New(Options{
		Console:   &console,
		Verbosity: "error",
		File:      path,
		Level:     "debug",
	})
	require.NoError(t, err)
	log.Silly("too chatty")
	log.Debug("file only", "n", 1)
	log.Error("both")
	require.NoError(t, log.Close())

	assert.Equal(t, "error: both\n", console.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "debug", rec["level"])
	assert.Equal(t, "file only", rec["msg"])
	assert.Contains(t, rec, "time")
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Verbosity: "loud"})
	require.ErrorContains(t, err, "verbosity")

	_, err = New(Options{Verbosity: "info", File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	require.ErrorContains(t, err, "log level")
}

func TestConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Console(&buf, false)
	log.Verbose("hidden")
	log.Error("boom")
	require.NoError(t, log.Close())
	assert.Equal(t, "error: boom\n", buf.String())
}
