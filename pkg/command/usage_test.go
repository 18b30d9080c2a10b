package command

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUsage(t *testing.T) {
	t.Parallel()

	newTree := func() (*Command, *Command) {
		sub := &Command{
			Name:      "config",
			Usage:     "config [flags] [key] [value]",
			ShortHelp: "Read, write, and reset config values",
			Flags: FlagsFunc(func(f *pflag.FlagSet) {
				f.BoolP("reset", "r", false, "Reset the config option to its default value")
				_ = SetGroup(f, "reset", "Flags:")
			}),
		}
		root := &Command{
			Name:   "app",
			Header: "My App\napp version 1.2.3",
			Usage:  "app command [flags] [options] [arguments]",
			Flags: FlagsFunc(func(f *pflag.FlagSet) {
				f.CountP("verbose", "v", "Output verbosity")
				f.String("config", "", "Specify location of config file")
				f.Var(NewChoiceValue("info", []string{"info", "debug"}), "level", "Log level")
				f.Bool("secret", false, "hidden")
				_ = f.MarkHidden("secret")
			}),
			SubCommands: []*Command{sub, {Name: "delete-everything", ShortHelp: "Remove all files"}},
		}
		return root, sub
	}

	t.Run("root", func(t *testing.T) {
		t.Parallel()
		root, _ := newTree()
		require.NoError(t, Parse(root, nil))
		out := DefaultUsage(root)

		assert.True(t, strings.HasPrefix(out, "My App\napp version 1.2.3\n\nUsage:\n  app command [flags] [options] [arguments]\n"))
		assert.Contains(t, out, "Commands:\n  config               Read, write, and reset config values\n")
		assert.Contains(t, out, "  delete-everything    Remove all files\n")
		assert.Contains(t, out, "Options:\n")
		assert.Contains(t, out, "-v, --verbose")
		assert.Contains(t, out, "Output verbosity [count]")
		assert.Contains(t, out, `Log level [choices: "info", "debug"] [default: info]`)
		assert.NotContains(t, out, "--secret")
		assert.True(t, strings.HasSuffix(out, `Use "app [command] --help" for more information about a command.`))
		// config is listed before delete-everything: definition order is kept.
		assert.Less(t, strings.Index(out, "  config "), strings.Index(out, "  delete-everything"))
	})
	t.Run("subcommand groups", func(t *testing.T) {
		t.Parallel()
		root, sub := newTree()
		require.NoError(t, Parse(root, []string{"config"}))
		out := DefaultUsage(sub)

		assert.True(t, strings.HasPrefix(out, "Read, write, and reset config values\n\nUsage:\n  config [flags] [key] [value]\n"))
		flagsAt := strings.Index(out, "Flags:\n")
		globalAt := strings.Index(out, "Global Flags:\n")
		require.NotEqual(t, -1, flagsAt)
		require.NotEqual(t, -1, globalAt)
		assert.Less(t, flagsAt, globalAt)
		assert.Contains(t, out, "-r, --reset")
		assert.Contains(t, out, "    --config")
		assert.NotContains(t, out, "Commands:")
	})
	t.Run("heading style from root", func(t *testing.T) {
		t.Parallel()
		root, sub := newTree()
		root.Heading = func(s string) string { return "<" + s + ">" }
		require.NoError(t, Parse(root, []string{"config"}))
		out := DefaultUsage(sub)
		assert.Contains(t, out, "<Usage:>")
		assert.Contains(t, out, "<Global Flags:>")
	})
	t.Run("usage func", func(t *testing.T) {
		t.Parallel()
		c := &Command{Name: "x", UsageFunc: func(*Command) string { return "custom" }}
		assert.Equal(t, "custom", Usage(c))
	})
	t.Run("generated usage line", func(t *testing.T) {
		t.Parallel()
		c := &Command{
			Name:        "x",
			Flags:       FlagsFunc(func(f *pflag.FlagSet) { f.Bool("y", false, "") }),
			SubCommands: []*Command{{Name: "z"}},
		}
		assert.Contains(t, DefaultUsage(c), "Usage:\n  x [flags] <command>\n")
	})
}
