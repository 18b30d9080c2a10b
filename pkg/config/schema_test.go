package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entry   Entry
		value   string
		want    string
		wantErr bool
	}{
		{name: "bool true", entry: Bool("a.b", false), value: "yes", want: "true"},
		{name: "bool false", entry: Bool("a.b", true), value: "OFF", want: "false"},
		{name: "bool invalid", entry: Bool("a.b", true), value: "maybe", wantErr: true},
		{name: "string", entry: String("a.b", ""), value: "anything", want: "anything"},
		{name: "choice", entry: Choice("log.level", "info", "info", "debug"), value: "debug", want: "debug"},
		{name: "choice invalid", entry: Choice("log.level", "info", "info", "debug"), value: "loud", wantErr: true},
		{name: "unknown type", entry: Entry{Key: "x", Type: "int"}, value: "1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.entry.Normalize(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Bool("a.b", true).Normalize("maybe")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestSchemaMerge(t *testing.T) {
	t.Parallel()

	base := Schema{Bool("cli.colors", true), String("log.file", "")}

	t.Run("disjoint keys yield the union", func(t *testing.T) {
		t.Parallel()
		merged := base.Merge(String("app.token", "x"))
		assert.Equal(t, []string{"cli.colors", "log.file", "app.token"}, merged.Keys())
		assert.Len(t, base, 2, "base schema must not change")
	})
	t.Run("overlapping key is replaced whole", func(t *testing.T) {
		t.Parallel()
		merged := base.Merge(Choice("cli.colors", "auto", "auto", "never"))
		assert.Equal(t, []string{"cli.colors", "log.file"}, merged.Keys())
		e, ok := merged.Lookup("cli.colors")
		require.True(t, ok)
		assert.Equal(t, TypeChoice, e.Type)
		assert.Equal(t, "auto", e.Default)
		assert.Equal(t, []string{"auto", "never"}, e.Choices)
	})
	t.Run("last merge wins", func(t *testing.T) {
		t.Parallel()
		merged := base.Merge(String("log.file", "a")).Merge(String("log.file", "b"))
		e, _ := merged.Lookup("log.file")
		assert.Equal(t, "b", e.Default)
	})
}

func TestSchemaValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Schema{Bool("a.b", true), Choice("c.d", "x", "x", "y")}.Validate())

	err := Schema{
		Bool("a.b", true),
		Bool("a.b", false),
		{Key: "", Type: TypeString},
		Choice("c.d", "z", "x", "y"),
		{Key: "e.f", Type: TypeBool, Default: "sometimes"},
	}.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, `duplicate schema key "a.b"`)
	assert.ErrorContains(t, err, "empty key")
	assert.ErrorContains(t, err, "default of c.d")
	assert.ErrorContains(t, err, "default of e.f")
}
