package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		Bool("cli.colors", true),
		String("cli.progressInterval", "250"),
		Choice("log.level", "info", "info", "verbose", "debug", "silly"),
		String("token", ""),
	}
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("missing file uses defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app", "app.ini")
		s, err := Open(path, testSchema())
		require.NoError(t, err)
		assert.Equal(t, path, s.Path())
		assert.True(t, s.Bool("cli.colors"))
		assert.Equal(t, "250", s.String("cli.progressInterval"))
		assert.Equal(t, "info", s.String("log.level"))
		assert.False(t, s.IsSet("cli.colors"))
		assert.NoFileExists(t, path)
	})
	t.Run("set persists in sections", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app", "app.ini")
		s, err := Open(path, testSchema())
		require.NoError(t, err)

		require.NoError(t, s.Set("cli.colors", "no"))
		require.NoError(t, s.Set("log.level", "debug"))
		require.NoError(t, s.Set("token", "abc"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "[cli]")
		assert.Contains(t, string(data), "[log]")

		reopened, err := Open(path, testSchema())
		require.NoError(t, err)
		assert.False(t, reopened.Bool("cli.colors"))
		assert.Equal(t, "debug", reopened.String("log.level"))
		assert.Equal(t, "abc", reopened.String("token"))
		assert.True(t, reopened.IsSet("log.level"))
	})
	t.Run("reset restores default", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.ini")
		s, err := Open(path, testSchema())
		require.NoError(t, err)
		require.NoError(t, s.Set("log.level", "silly"))
		require.NoError(t, s.Reset("log.level"))
		assert.Equal(t, "info", s.String("log.level"))
		assert.False(t, s.IsSet("log.level"))

		reopened, err := Open(path, testSchema())
		require.NoError(t, err)
		assert.Equal(t, "info", reopened.String("log.level"))

		// Resetting a key that was never set is a no-op.
		require.NoError(t, s.Reset("cli.colors"))
	})
	t.Run("invalid values are rejected", func(t *testing.T) {
		t.Parallel()
		s, err := Open(filepath.Join(t.TempDir(), "app.ini"), testSchema())
		require.NoError(t, err)

		require.ErrorIs(t, s.Set("cli.colors", "maybe"), ErrInvalidValue)
		require.ErrorIs(t, s.Set("log.level", "loud"), ErrInvalidValue)
		require.ErrorIs(t, s.Set("nope", "1"), ErrUnknownKey)
		require.ErrorIs(t, s.Reset("nope"), ErrUnknownKey)
		_, err = s.Get("nope")
		require.ErrorIs(t, err, ErrUnknownKey)
		assert.False(t, s.Bool("nope"))
	})
	t.Run("hand edited invalid value falls back to default", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.ini")
		require.NoError(t, os.WriteFile(path, []byte("[cli]\ncolors = purple\n[log]\nlevel = silly\n"), 0o644))
		s, err := Open(path, testSchema())
		require.NoError(t, err)
		assert.True(t, s.Bool("cli.colors"))
		assert.Equal(t, "silly", s.String("log.level"))
	})
	t.Run("invalid schema", func(t *testing.T) {
		t.Parallel()
		_, err := Open(filepath.Join(t.TempDir(), "app.ini"), Schema{Choice("a.b", "z", "x")})
		require.ErrorContains(t, err, "invalid config schema")
	})
}
