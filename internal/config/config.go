package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/brickyard-dev/brick/internal/paths"
)

// DefaultRegistryURL is the public brick registry.
const DefaultRegistryURL = "https://registry.brickyard.dev/api/v1"

// Config holds user settings read from config.toml.
type Config struct {
	RegistryURL string `toml:"registry_url"`
	LogLevel    string `toml:"log_level"`
	NoColor     bool   `toml:"no_color"`
	UpdateCheck bool   `toml:"update_check"`
	CacheDir    string `toml:"cache_dir"`
	LogFile     string `toml:"log_file"`
}

// Defaults returns the settings used when config.toml is absent.
func Defaults() Config {
	return Config{
		RegistryURL: DefaultRegistryURL,
		LogLevel:    "warn",
		UpdateCheck: true,
		CacheDir:    paths.DefaultCacheDir(),
	}
}

// Load reads the config file at path on top of Defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Defaults(), fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg, getenv)
	cfg.RegistryURL = strings.TrimRight(cfg.RegistryURL, "/")
	return cfg, nil
}

// LoadDefault loads config.toml from the user config directory.
func LoadDefault() (Config, error) {
	return Load(paths.ConfigFilePath(), os.Getenv)
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv("BRICK_REGISTRY_URL"); v != "" {
		cfg.RegistryURL = v
	}
	if v := getenv("BRICK_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := getenv("BRICK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("BRICK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if getenv("NO_COLOR") != "" || getenv("BRICK_NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if v := getenv("BRICK_UPDATE_CHECK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UpdateCheck = b
		}
	}
}
