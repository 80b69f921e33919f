package update

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
	"github.com/brickyard-dev/brick/internal/log"
	"github.com/brickyard-dev/brick/internal/ui/style"
)

type fakeReleases struct {
	latest     *Release
	latestErr  error
	installErr error
	installed  string
}

func (f *fakeReleases) Latest(context.Context, string) (*Release, error) {
	return f.latest, f.latestErr
}

func (f *fakeReleases) Install(_ context.Context, rel *Release, execPath string) error {
	f.installed = rel.Version + "@" + execPath
	return f.installErr
}

func newDeps(releases ReleaseSource, stdout *bytes.Buffer) Dependencies {
	return Dependencies{
		Stdout:         stdout,
		Styler:         style.NopStyler{},
		Logger:         log.NopLogger{},
		CurrentVersion: "1.0.0",
		Releases:       releases,
		ExecutablePath: func() (string, error) { return "/usr/local/bin/brick", nil },
	}
}

func TestUpdate_Installs(t *testing.T) {
	var stdout bytes.Buffer
	releases := &fakeReleases{latest: &Release{Version: "1.1.0"}}

	err := Update(context.Background(), nil, dispatchers.NewParsedFlags(nil), newDeps(releases, &stdout))

	require.NoError(t, err)
	require.Equal(t, "1.1.0@/usr/local/bin/brick", releases.installed)
	require.Contains(t, stdout.String(), "Updated brick to 1.1.0")
}

func TestUpdate_CheckOnly(t *testing.T) {
	var stdout bytes.Buffer
	releases := &fakeReleases{latest: &Release{Version: "1.1.0"}}

	err := Update(context.Background(), nil, dispatchers.NewParsedFlags([]string{"--check"}), newDeps(releases, &stdout))

	require.NoError(t, err)
	require.Empty(t, releases.installed)
	require.Contains(t, stdout.String(), "New version available: 1.1.0 (current: 1.0.0)")
	require.Contains(t, stdout.String(), "releases/tag/v1.1.0")
}

func TestUpdate_AlreadyLatest(t *testing.T) {
	var stdout bytes.Buffer
	releases := &fakeReleases{latest: &Release{Version: "1.0.0"}}

	err := Update(context.Background(), nil, dispatchers.NewParsedFlags(nil), newDeps(releases, &stdout))

	require.NoError(t, err)
	require.Empty(t, releases.installed)
	require.Contains(t, stdout.String(), "already the latest")
}

func TestUpdate_NoRelease(t *testing.T) {
	var stdout bytes.Buffer

	err := Update(context.Background(), nil, dispatchers.NewParsedFlags(nil), newDeps(&fakeReleases{}, &stdout))

	require.NoError(t, err)
	require.Contains(t, stdout.String(), "No releases found")
}

func TestUpdate_LookupFailureIsExternal(t *testing.T) {
	var stdout bytes.Buffer
	releases := &fakeReleases{latestErr: errors.New("rate limited")}

	err := Update(context.Background(), nil, dispatchers.NewParsedFlags(nil), newDeps(releases, &stdout))

	require.Equal(t, failure.KindExternalProcess, failure.KindOf(err))
	require.Contains(t, err.Error(), "rate limited")
}

func TestUpdate_InstallFailureIsExternal(t *testing.T) {
	var stdout bytes.Buffer
	releases := &fakeReleases{latest: &Release{Version: "1.1.0"}, installErr: errors.New("permission denied")}

	err := Update(context.Background(), nil, dispatchers.NewParsedFlags(nil), newDeps(releases, &stdout))

	require.Equal(t, failure.KindExternalProcess, failure.KindOf(err))
}

func TestGitHubSource_InstallRejectsForeignRelease(t *testing.T) {
	err := NewGitHubSource().Install(context.Background(), &Release{Version: "1.0.0"}, "/tmp/brick")
	require.Error(t, err)
}
