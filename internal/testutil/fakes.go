package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/failure"
)

// WriteBrick writes a brick.yaml for b and the given template files under
// dir/__brick__. It returns dir.
func WriteBrick(t *testing.T, dir string, b *brick.Brick, files map[string]string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, brick.TemplateDir), 0755))
	require.NoError(t, brick.Write(dir, b))
	for rel, content := range files {
		path := filepath.Join(dir, brick.TemplateDir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// HelloBrick is a brick with one string variable and one template.
func HelloBrick(version string) *brick.Brick {
	return &brick.Brick{
		Name:    "hello",
		Version: version,
		Vars: map[string]brick.Variable{
			"name": {Type: brick.TypeString, Default: "Dash"},
		},
	}
}

// BundleBytes packs the brick in dir and encodes it.
func BundleBytes(t *testing.T, dir string) []byte {
	t.Helper()

	b, err := brick.NewBundle(dir)
	require.NoError(t, err)
	data, err := b.Marshal()
	require.NoError(t, err)
	return data
}

// FakeRegistry is an in-memory domain.RegistryClient.
type FakeRegistry struct {
	URL     string
	Bundles map[string]map[string][]byte // name -> version -> bundle
	Users   map[string]string            // token -> email
	Results []domain.RegistryBrick
	Err     error

	Published  [][]byte
	PublishErr error
	Closed     int
}

func (f *FakeRegistry) BaseURL() string {
	if f.URL == "" {
		return "https://registry.test"
	}
	return f.URL
}

func (f *FakeRegistry) CurrentUser(_ context.Context, token string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	email, ok := f.Users[token]
	if !ok {
		return "", failure.Domain("Not authorized, run brick login.")
	}
	return email, nil
}

func (f *FakeRegistry) Search(_ context.Context, _ string) ([]domain.RegistryBrick, error) {
	return f.Results, f.Err
}

func (f *FakeRegistry) Versions(_ context.Context, name string) ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	byVersion, ok := f.Bundles[name]
	if !ok {
		return nil, failure.Domain("Could not find a brick %q in the registry.", name)
	}
	versions := make([]string, 0, len(byVersion))
	for v := range byVersion {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions, nil
}

func (f *FakeRegistry) Download(_ context.Context, name, version string) ([]byte, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	data, ok := f.Bundles[name][version]
	if !ok {
		return nil, failure.Domain("Could not find %s %s in the registry.", name, version)
	}
	return data, nil
}

func (f *FakeRegistry) Publish(_ context.Context, token string, bundle []byte) error {
	if _, ok := f.Users[token]; !ok {
		return failure.Domain("Not authorized, run brick login.")
	}
	if f.PublishErr != nil {
		return f.PublishErr
	}
	f.Published = append(f.Published, bundle)
	return nil
}

func (f *FakeRegistry) Close() error {
	f.Closed++
	return nil
}

// FakeGit clones by copying local directories keyed by url.
type FakeGit struct {
	Repos map[string]string
	Err   error
	Calls []string
}

func (f *FakeGit) Clone(_ context.Context, url, ref, dest string) error {
	f.Calls = append(f.Calls, url+"#"+ref)
	if f.Err != nil {
		return f.Err
	}
	src, ok := f.Repos[url]
	if !ok {
		return fmt.Errorf("repository %s not found", url)
	}
	return os.CopyFS(dest, os.DirFS(src))
}

var (
	_ domain.RegistryClient = (*FakeRegistry)(nil)
	_ domain.GitProvider    = (*FakeGit)(nil)
)
