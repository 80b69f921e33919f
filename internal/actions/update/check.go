package update

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/log"
	"github.com/brickyard-dev/brick/internal/ui/style"
)

const (
	// Command is the self-update command; it never triggers the check.
	Command = "update"

	// DefaultTimeout bounds the version lookup.
	DefaultTimeout = 3 * time.Second

	changelogURL = "https://github.com/" + Slug + "/releases/tag/"
	updateHint   = "brick update"
)

// ShouldCheckUpdate reports whether running command is followed by the
// update check.
func ShouldCheckUpdate(command string) bool {
	return command != Command
}

// Notifier prints a notice when a newer brick has been released. It never
// fails: lookup errors and panics are logged at debug level.
type Notifier struct {
	Lookup  VersionLookup
	Slug    string
	Logger  domain.Logger
	Stderr  io.Writer
	Styler  domain.Styler
	Timeout time.Duration
	// Disabled turns the check off (update_check = false).
	Disabled bool
}

// ChangelogURL returns the release notes link of version.
func ChangelogURL(version string) string {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return changelogURL + version
}

// CheckAndNotify compares current against the latest published version
// and prints a notice to Stderr when they differ. Versions are compared
// for equality only.
func (n *Notifier) CheckAndNotify(ctx context.Context, current string) {
	if n == nil || n.Disabled || n.Lookup == nil {
		return
	}
	logger := n.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}
	styler := n.Styler
	if styler == nil {
		styler = style.NopStyler{}
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Debug("update check: recovered from panic: %v", r)
		}
	}()

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slug := n.Slug
	if slug == "" {
		slug = Slug
	}

	latest, err := n.Lookup.LatestVersion(ctx, slug)
	if err != nil {
		logger.Debug("update check failed: %v", err)
		return
	}

	if latest == current {
		logger.Debug("brick %s is up to date", current)
		return
	}

	_, _ = fmt.Fprintf(n.Stderr, "\n%s %s → %s\n%s %s\nRun %s to update\n",
		styler.Warning("Update available!"),
		styler.Muted(current),
		styler.Success(latest),
		"Changelog:",
		styler.Info(ChangelogURL(latest)),
		styler.Info(updateHint),
	)
}
