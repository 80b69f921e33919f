package update

import (
	"context"
	"fmt"

	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Update replaces the running executable with the latest release. With
// --check it only reports whether one is available.
func Update(ctx context.Context, _ []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	deps.Logger.Debug("update: looking up latest release of %s", Slug)

	rel, err := deps.Releases.Latest(ctx, Slug)
	if err != nil {
		return failure.ExternalProcess(err, "Could not check for updates")
	}
	if rel == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No releases found for this platform.")
		return nil
	}

	if rel.Version == deps.CurrentVersion {
		_, _ = fmt.Fprintf(deps.Stdout, "brick %s is already the latest version.\n", deps.CurrentVersion)
		return nil
	}

	_, _ = fmt.Fprintf(deps.Stdout, "New version available: %s (current: %s)\n",
		deps.Styler.Success(rel.Version), deps.Styler.Muted(deps.CurrentVersion))

	if flags.Has("--check") {
		_, _ = fmt.Fprintf(deps.Stdout, "Changelog: %s\n", deps.Styler.Info(ChangelogURL(rel.Version)))
		return nil
	}

	execPath, err := deps.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updating to %s...\n", rel.Version)
	if err := deps.Releases.Install(ctx, rel, execPath); err != nil {
		return failure.ExternalProcess(err, "Failed to install brick %s", rel.Version)
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s\n", deps.Styler.Success("Updated brick to "+rel.Version))
	return nil
}
