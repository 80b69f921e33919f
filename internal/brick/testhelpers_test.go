package brick

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeBrick creates a brick directory from a brick.yaml body and template
// files keyed by path relative to __brick__.
func writeBrick(t *testing.T, manifest string, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, TemplateDir), 0755))

	for rel, content := range files {
		path := filepath.Join(dir, TemplateDir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

const helloManifest = `name: hello
description: Says hello
version: 1.0.0
vars:
  name:
    type: string
    default: Dash
    prompt: What is your name?
`
