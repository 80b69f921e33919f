package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), noEnv)

	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.True(t, cfg.UpdateCheck)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FileOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
registry_url = "https://bricks.example.com/api/"
log_level = "debug"
`)

	cfg, err := Load(path, noEnv)

	require.NoError(t, err)
	require.Equal(t, "https://bricks.example.com/api", cfg.RegistryURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.UpdateCheck, "absent keys keep their defaults")
	require.False(t, cfg.NoColor)
}

func TestLoad_DisableUpdateCheck(t *testing.T) {
	path := writeConfig(t, "update_check = false\n")

	cfg, err := Load(path, noEnv)

	require.NoError(t, err)
	require.False(t, cfg.UpdateCheck)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "registry_url = \n")

	_, err := Load(path, noEnv)

	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `registry_url = "https://file.example.com"`)
	env := map[string]string{
		"BRICK_REGISTRY_URL": "https://env.example.com",
		"BRICK_CACHE_DIR":    "/tmp/brick-cache",
		"BRICK_LOG_LEVEL":    "info",
		"NO_COLOR":           "1",
		"BRICK_UPDATE_CHECK": "false",
	}

	cfg, err := Load(path, func(k string) string { return env[k] })

	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.RegistryURL)
	require.Equal(t, "/tmp/brick-cache", cfg.CacheDir)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.NoColor)
	require.False(t, cfg.UpdateCheck)
}
