package cache_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/cache"
	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/failure"
	"github.com/brickyard-dev/brick/internal/log"
	"github.com/brickyard-dev/brick/internal/testutil"
)

type fixture struct {
	cache    *cache.Cache
	store    domain.BrickStore
	registry *testutil.FakeRegistry
	git      *testutil.FakeGit
	manifest *brick.Manifest
	project  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	project := t.TempDir()
	s := testutil.NewTestStore(t)
	reg := &testutil.FakeRegistry{Bundles: map[string]map[string][]byte{}}
	git := &testutil.FakeGit{Repos: map[string]string{}}

	c := cache.New(filepath.Join(t.TempDir(), "cache"), s, reg, git, log.NopLogger{})
	c.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	return &fixture{
		cache:    c,
		store:    s,
		registry: reg,
		git:      git,
		manifest: brick.NewManifest(filepath.Join(project, brick.ProjectManifestFile)),
		project:  project,
	}
}

func TestFetch_Path(t *testing.T) {
	f := newFixture(t)
	testutil.WriteBrick(t, filepath.Join(f.project, "bricks", "hello"), testutil.HelloBrick("0.1.0"), nil)
	src := brick.Source{Path: "bricks/hello"}

	entry, err := f.cache.Fetch(context.Background(), f.manifest, "hello", src)

	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	require.Equal(t, domain.SourcePath, entry.Source)
	require.Equal(t, "0.1.0", entry.Version)
	require.Equal(t, filepath.Join(f.project, "bricks", "hello"), entry.Location)
	require.Equal(t, "path:"+entry.Location, entry.Key)
}

func TestFetch_PathNotABrick(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Join(f.project, "empty"), 0755))

	_, err := f.cache.Fetch(context.Background(), f.manifest, "hello", brick.Source{Path: "empty"})

	require.Equal(t, failure.KindDomain, failure.KindOf(err))
	require.Contains(t, err.Error(), "No brick.yaml found")
}

func TestFetch_Git(t *testing.T) {
	f := newFixture(t)
	repo := t.TempDir()
	testutil.WriteBrick(t, filepath.Join(repo, "bricks", "hello"), testutil.HelloBrick("1.0.0"),
		map[string]string{"HELLO.md": "Hi {{.name}}"})
	f.git.Repos["https://example.com/bricks.git"] = repo

	src := brick.Source{Git: &brick.GitSource{URL: "https://example.com/bricks.git", Ref: "main", Path: "bricks/hello"}}
	entry, err := f.cache.Fetch(context.Background(), f.manifest, "hello", src)

	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/bricks.git#main"}, f.git.Calls)
	require.Equal(t, domain.SourceGit, entry.Source)
	require.Equal(t, filepath.Join(f.cache.GitDir(src.Git.URL, src.Git.Ref), "bricks", "hello"), entry.Location)
	require.FileExists(t, filepath.Join(entry.Location, brick.TemplateDir, "HELLO.md"))

	// Fetching again replaces the clone.
	_, err = f.cache.Fetch(context.Background(), f.manifest, "hello", src)
	require.NoError(t, err)
	list, err := f.store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFetch_GitCloneFails(t *testing.T) {
	f := newFixture(t)
	f.git.Err = errors.New("exit status 128")

	src := brick.Source{Git: &brick.GitSource{URL: "https://example.com/missing.git"}}
	_, err := f.cache.Fetch(context.Background(), f.manifest, "hello", src)

	require.Equal(t, failure.KindExternalProcess, failure.KindOf(err))
	require.Contains(t, err.Error(), "Could not clone https://example.com/missing.git")
}

func TestFetch_RegistryPicksNewestMatch(t *testing.T) {
	f := newFixture(t)
	f.registry.Bundles["hello"] = map[string][]byte{
		"1.0.0": testutil.BundleBytes(t, testutil.WriteBrick(t, t.TempDir(), testutil.HelloBrick("1.0.0"), nil)),
		"1.2.0": testutil.BundleBytes(t, testutil.WriteBrick(t, t.TempDir(), testutil.HelloBrick("1.2.0"), nil)),
		"2.0.0": testutil.BundleBytes(t, testutil.WriteBrick(t, t.TempDir(), testutil.HelloBrick("2.0.0"), nil)),
	}

	entry, err := f.cache.Fetch(context.Background(), f.manifest, "hello", brick.Source{Version: "^1.0.0"})

	require.NoError(t, err)
	require.Equal(t, "1.2.0", entry.Version)
	require.Equal(t, "registry:hello", entry.Key)
	require.Equal(t, filepath.Join(f.cache.Dir, "registry", "hello", "1.2.0"), entry.Location)
}

func TestFetch_RegistryNoMatch(t *testing.T) {
	f := newFixture(t)
	f.registry.Bundles["hello"] = map[string][]byte{
		"1.0.0": testutil.BundleBytes(t, testutil.WriteBrick(t, t.TempDir(), testutil.HelloBrick("1.0.0"), nil)),
	}

	_, err := f.cache.Fetch(context.Background(), f.manifest, "hello", brick.Source{Version: "^3.0.0"})

	require.Equal(t, failure.KindDomain, failure.KindOf(err))
}

func TestResolve_UnknownBrick(t *testing.T) {
	f := newFixture(t)

	_, err := f.cache.Resolve(context.Background(), f.manifest, "widget")

	var ferr *failure.Error
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, failure.KindDomain, ferr.Kind)
	require.Equal(t, `Could not find a brick named "widget".`, ferr.Message)
}

func TestResolve_UsesCachedEntry(t *testing.T) {
	f := newFixture(t)
	dir := testutil.WriteBrick(t, filepath.Join(f.project, "hello"), testutil.HelloBrick("0.1.0"), nil)
	f.manifest.Bricks["hello"] = brick.Source{Path: "hello"}
	testutil.SeedBricks(t, f.store, domain.CachedBrick{
		Key: "path:" + dir, Name: "hello", Version: "0.0.9", Source: domain.SourcePath, Location: dir,
	})

	entry, err := f.cache.Resolve(context.Background(), f.manifest, "hello")

	require.NoError(t, err)
	require.Equal(t, "0.0.9", entry.Version)
}

func TestResolve_RefetchesMissingFiles(t *testing.T) {
	f := newFixture(t)
	f.registry.Bundles["hello"] = map[string][]byte{
		"1.0.0": testutil.BundleBytes(t, testutil.WriteBrick(t, t.TempDir(), testutil.HelloBrick("1.0.0"), nil)),
	}
	f.manifest.Bricks["hello"] = brick.Source{Version: "^1.0.0"}
	testutil.SeedBricks(t, f.store, domain.CachedBrick{
		Key: "registry:hello", Name: "hello", Version: "1.0.0", Source: domain.SourceRegistry,
		Location: filepath.Join(f.cache.Dir, "gone"),
	})

	entry, err := f.cache.Resolve(context.Background(), f.manifest, "hello")

	require.NoError(t, err)
	require.DirExists(t, entry.Location)
}

func TestEvict(t *testing.T) {
	f := newFixture(t)
	f.registry.Bundles["hello"] = map[string][]byte{
		"1.0.0": testutil.BundleBytes(t, testutil.WriteBrick(t, t.TempDir(), testutil.HelloBrick("1.0.0"), nil)),
	}
	src := brick.Source{Version: "1.0.0"}
	entry, err := f.cache.Fetch(context.Background(), f.manifest, "hello", src)
	require.NoError(t, err)

	require.NoError(t, f.cache.Evict(f.manifest, "hello", src))

	require.NoDirExists(t, entry.Location)
	_, found, err := f.store.Find(entry.Key)
	require.NoError(t, err)
	require.False(t, found)

	// Evicting twice is a no-op.
	require.NoError(t, f.cache.Evict(f.manifest, "hello", src))
}

func TestEvict_KeepsPathBrickFiles(t *testing.T) {
	f := newFixture(t)
	dir := testutil.WriteBrick(t, filepath.Join(f.project, "hello"), testutil.HelloBrick("0.1.0"), nil)
	src := brick.Source{Path: "hello"}
	_, err := f.cache.Fetch(context.Background(), f.manifest, "hello", src)
	require.NoError(t, err)

	require.NoError(t, f.cache.Evict(f.manifest, "hello", src))

	require.FileExists(t, filepath.Join(dir, brick.ManifestFile))
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	testutil.SeedBricks(t, f.store,
		domain.CachedBrick{Key: "registry:a", Name: "a", Version: "1.0.0", Source: domain.SourceRegistry, Location: "/x"},
		domain.CachedBrick{Key: "registry:b", Name: "b", Version: "1.0.0", Source: domain.SourceRegistry, Location: "/y"},
	)
	require.NoError(t, os.MkdirAll(filepath.Join(f.cache.Dir, "registry"), 0755))

	n, err := f.cache.Clear()

	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	require.NoDirExists(t, f.cache.Dir)
}
