package brick

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBundle_UnpackRestoresBrick(t *testing.T) {
	dir := writeBrick(t, helloManifest, map[string]string{
		"HELLO.md":          "Hello {{.name}}!",
		"lib/{{.name}}.txt": "x",
	})

	bundle, err := NewBundle(dir)
	require.NoError(t, err)
	require.NotEmpty(t, bundle.ID)
	require.Equal(t, "hello", bundle.Name)
	require.Len(t, bundle.Files, 3)

	data, err := bundle.Marshal()
	require.NoError(t, err)

	parsed, err := ParseBundle(data)
	require.NoError(t, err)

	dest := t.TempDir()
	require.NoError(t, parsed.Unpack(dest))

	b, err := Load(dest)
	require.NoError(t, err)
	require.Equal(t, "hello", b.Name)

	content, err := os.ReadFile(filepath.Join(dest, TemplateDir, "lib", "{{.name}}.txt"))
	require.NoError(t, err)
	require.Equal(t, "x", string(content))
}

func TestParseBundle_Invalid(t *testing.T) {
	_, err := ParseBundle([]byte("not json"))
	require.Error(t, err)

	_, err = ParseBundle([]byte(`{"name":"x","files":[]}`))
	require.ErrorContains(t, err, "missing brick.yaml")
}

func TestBundle_UnpackRejectsTraversal(t *testing.T) {
	b := &Bundle{Files: []BundleFile{{Path: "../evil", Data: []byte("x")}}}

	err := b.Unpack(t.TempDir())

	require.ErrorContains(t, err, "escapes")
}
