package brick

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	require.True(t, ValidName("hello"))
	require.True(t, ValidName("my_brick2"))
	require.False(t, ValidName("Hello"))
	require.False(t, ValidName("2fast"))
	require.False(t, ValidName("with-dash"))
	require.False(t, ValidName(""))
}

func TestLoad(t *testing.T) {
	dir := writeBrick(t, helloManifest, nil)

	b, err := Load(dir)

	require.NoError(t, err)
	require.Equal(t, "hello", b.Name)
	require.Equal(t, "1.0.0", b.Version)
	require.Equal(t, "Dash", b.Vars["name"].Default)
}

func TestLoad_NotABrick(t *testing.T) {
	_, err := Load(t.TempDir())

	require.True(t, errors.Is(err, ErrNotBrick))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		contains string
	}{
		{"bad yaml", "name: [", "parse brick.yaml"},
		{"bad name", "name: Bad\nversion: 1.0.0\n", "invalid brick name"},
		{"bad version", "name: ok\nversion: one\n", "invalid version"},
		{"bad var type", "name: ok\nversion: 1.0.0\nvars:\n  x:\n    type: list\n", "unknown type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.manifest))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	dir := t.TempDir()
	in := &Brick{Name: "widget", Version: "0.2.0", Vars: map[string]Variable{"flag": {Type: TypeBoolean}}}

	require.NoError(t, Write(dir, in))
	out, err := Load(dir)

	require.NoError(t, err)
	require.Equal(t, in.Name, out.Name)
	require.Equal(t, TypeBoolean, out.Vars["flag"].Type)
}
