package manage

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/brickyard-dev/brick/internal/cache"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/log"
	"github.com/brickyard-dev/brick/internal/store"
	"github.com/brickyard-dev/brick/internal/testutil"
	"github.com/brickyard-dev/brick/internal/ui/style"
)

type testEnv struct {
	deps     Dependencies
	out      *bytes.Buffer
	wd       string
	store    *store.Store
	registry *testutil.FakeRegistry
	git      *testutil.FakeGit
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	wd := t.TempDir()
	s := testutil.NewTestStore(t)
	reg := &testutil.FakeRegistry{Bundles: map[string]map[string][]byte{}}
	git := &testutil.FakeGit{Repos: map[string]string{}}
	out := &bytes.Buffer{}

	deps := Dependencies{
		Cache:  cache.New(filepath.Join(t.TempDir(), "cache"), s, reg, git, log.NopLogger{}),
		Store:  s,
		Styler: style.NopStyler{},
		Logger: log.NopLogger{},
		Printf: func(format string, args ...any) (int, error) {
			return fmt.Fprintf(out, format, args...)
		},
		Println: func(args ...any) (int, error) {
			return fmt.Fprintln(out, args...)
		},
		Now:            time.Now,
		Getwd:          func() (string, error) { return wd, nil },
		GlobalManifest: filepath.Join(t.TempDir(), "config", "bricks.yaml"),
	}

	return &testEnv{deps: deps, out: out, wd: wd, store: s, registry: reg, git: git}
}

func (e *testEnv) publish(t *testing.T, version string) {
	t.Helper()

	if e.registry.Bundles["hello"] == nil {
		e.registry.Bundles["hello"] = map[string][]byte{}
	}
	dir := testutil.WriteBrick(t, t.TempDir(), testutil.HelloBrick(version), map[string]string{"HELLO.md": "Hello {{.name}}!"})
	e.registry.Bundles["hello"][version] = testutil.BundleBytes(t, dir)
}

func flags(raw ...string) *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(raw)
}
