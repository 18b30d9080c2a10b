package command

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFlag(t *testing.T) {
	t.Parallel()

	newRoot := func() *Command {
		return &Command{
			Name: "root",
			Flags: FlagsFunc(func(f *pflag.FlagSet) {
				f.String("version", "1.0.0", "show version")
				f.CountP("verbose", "v", "verbosity")
				f.StringSlice("tag", nil, "tags")
			}),
		}
	}

	t.Run("flag not found", func(t *testing.T) {
		t.Parallel()
		root := newRoot()
		require.NoError(t, Parse(root, nil))
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorContains(t, err, `flag "--missing" not found in command "root" flag set`)
		}()
		_ = GetFlag[string](root.State(), "missing")
	})
	t.Run("flag type mismatch", func(t *testing.T) {
		t.Parallel()
		root := newRoot()
		require.NoError(t, Parse(root, nil))
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorContains(t, err, `type mismatch for flag "--version": registered string, requested int`)
		}()
		_ = GetFlag[int](root.State(), "version")
	})
	t.Run("typed values", func(t *testing.T) {
		t.Parallel()
		root := newRoot()
		require.NoError(t, Parse(root, []string{"-vv", "--tag", "a", "--tag", "b"}))
		s := root.State()
		assert.Equal(t, "1.0.0", GetFlag[string](s, "version"))
		assert.Equal(t, 2, GetFlag[int](s, "verbose"))
		assert.Equal(t, []string{"a", "b"}, GetFlag[[]string](s, "tag"))
	})
	t.Run("lookup", func(t *testing.T) {
		t.Parallel()
		root := newRoot()
		require.NoError(t, Parse(root, nil))
		s := root.State()

		v, ok := LookupFlag[int](s, "verbose")
		assert.True(t, ok)
		assert.Equal(t, 0, v)

		_, ok = LookupFlag[bool](s, "verbose")
		assert.False(t, ok)
		_, ok = LookupFlag[bool](s, "missing")
		assert.False(t, ok)
		_, ok = LookupFlag[bool](nil, "missing")
		assert.False(t, ok)
	})
}
