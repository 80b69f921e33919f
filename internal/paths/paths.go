package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "brick"

// AppConfigDir returns the application config directory.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where the brick cache and its index live.
//   - macOS: ~/Library/Application Support/brick
//   - Linux: $XDG_DATA_HOME/brick or ~/.local/share/brick
//   - Windows: %LOCALAPPDATA%\brick
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path of config.toml.
func ConfigFilePath() string {
	return filepath.Join(AppConfigDir(), "config.toml")
}

// GlobalManifestPath returns the path of the global bricks.yaml.
func GlobalManifestPath() string {
	return filepath.Join(AppConfigDir(), "bricks.yaml")
}

// DefaultCacheDir returns where fetched bricks are stored unless cache_dir is configured.
func DefaultCacheDir() string {
	return filepath.Join(AppLocalDataDir(), "cache")
}

// DBPath returns the path of the cache index database.
func DBPath() string {
	return filepath.Join(AppLocalDataDir(), "brick.db")
}

// EnsureDir creates dir with restrictive permissions.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0700)
}
