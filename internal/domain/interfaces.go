package domain

import (
	"context"
	"io"

	"github.com/brickyard-dev/brick/internal/config"
)

// LogLevel is the verbosity threshold of a Logger.
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// Logger defines logging operations.
type Logger interface {
	// Debug logs a diagnostic message, shown only with --verbose.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// SetLevel changes the verbosity threshold.
	SetLevel(level LogLevel)

	// Level returns the current verbosity threshold.
	Level() LogLevel

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// RegistryClient is the network identity shared by login, logout, publish,
// search and registry-sourced bricks. It is acquired once per invocation and
// closed by the command runner.
type RegistryClient interface {
	// BaseURL identifies the registry, used as the credentials key.
	BaseURL() string

	// CurrentUser returns the email of the account owning token.
	CurrentUser(ctx context.Context, token string) (string, error)

	// Search returns bricks matching query.
	Search(ctx context.Context, query string) ([]RegistryBrick, error)

	// Versions returns every published version of a brick.
	Versions(ctx context.Context, name string) ([]string, error)

	// Download returns the raw bundle document of a brick version.
	Download(ctx context.Context, name, version string) ([]byte, error)

	// Publish uploads a raw bundle document.
	Publish(ctx context.Context, token string, bundle []byte) error

	// Close releases idle connections.
	Close() error
}

// BrickStore persists the brick cache index and registry credentials.
type BrickStore interface {
	// Put inserts or replaces the cache entry with the same Key.
	Put(brick CachedBrick) error

	// Find looks up a cache entry by key.
	Find(key string) (CachedBrick, bool, error)

	// List returns every cache entry ordered by name.
	List() ([]CachedBrick, error)

	// Delete removes the cache entry with the given key.
	Delete(key string) error

	// Clear removes every cache entry and returns how many were removed.
	Clear() (int64, error)

	// SaveCredentials stores credentials for a registry.
	SaveCredentials(creds Credentials) error

	// Credentials returns the stored credentials for a registry.
	Credentials(registry string) (Credentials, bool, error)

	// DeleteCredentials removes credentials, reporting whether any existed.
	DeleteCredentials(registry string) (bool, error)

	// Close closes the store connection.
	Close() error
}

// GitProvider defines operations for fetching git-hosted bricks.
type GitProvider interface {
	// Clone clones url at ref into dest.
	Clone(ctx context.Context, url, ref, dest string) error
}

// Application represents the main application context with all dependencies.
type Application struct {
	Version     string
	Config      config.Config
	Logger      Logger
	Stdin       io.Reader
	Output      OutputWriter
	Errors      OutputWriter
	Styler      Styler
	Registry    RegistryClient
	Store       BrickStore
	Git         GitProvider
	Interactive bool
}
