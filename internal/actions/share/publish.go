package share

import (
	"context"
	"fmt"

	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Publish bundles the brick at args[0] (default: the working directory)
// and uploads it with the stored credentials. --dry-run stops before the
// upload and needs no login.
func Publish(ctx context.Context, args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else {
		wd, err := deps.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	b, err := loadBundle(dir)
	if err != nil {
		return err
	}

	data, err := b.Marshal()
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}

	if flags.Has("--dry-run") {
		deps.Printf("%s %s %s\n", deps.Styler.Header("Would publish"), b.Name, b.Version)
		for _, f := range b.Files {
			deps.Printf("  %s %s\n", f.Path, deps.Styler.Muted(fmt.Sprintf("(%d bytes)", len(f.Data))))
		}
		deps.Printf("Bundle size: %d bytes\n", len(data))
		return nil
	}

	creds, found, err := deps.Store.Credentials(deps.Registry.BaseURL())
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	if !found {
		return failure.Domain("You must be logged in to publish, run brick login.")
	}

	deps.Logger.Debug("publish: uploading %s %s (%d bytes) as %s", b.Name, b.Version, len(data), creds.Email)
	if err := deps.Registry.Publish(ctx, creds.Token, data); err != nil {
		return err
	}

	deps.Printf("%s %s %s to %s\n", deps.Styler.Success("Published"), b.Name, b.Version, deps.Registry.BaseURL())
	return nil
}
