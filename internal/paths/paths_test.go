package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppConfigDir_EndsWithBrick(t *testing.T) {
	dir := AppConfigDir()
	require.NotEmpty(t, dir)
	require.Equal(t, "brick", filepath.Base(dir))
}

func TestAppLocalDataDir_EndsWithBrick(t *testing.T) {
	dir := AppLocalDataDir()
	require.True(t, strings.HasSuffix(dir, "brick"),
		"AppLocalDataDir should end with 'brick': %s", dir)
}

func TestAppLocalDataDir_XDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only applies on linux")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	require.Equal(t, filepath.Join(tmp, "brick"), AppLocalDataDir())
}

func TestFilesLiveInAppDirs(t *testing.T) {
	require.Equal(t, AppConfigDir(), filepath.Dir(ConfigFilePath()))
	require.Equal(t, AppConfigDir(), filepath.Dir(GlobalManifestPath()))
	require.Equal(t, AppLocalDataDir(), filepath.Dir(DBPath()))
	require.Equal(t, AppLocalDataDir(), filepath.Dir(DefaultCacheDir()))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
