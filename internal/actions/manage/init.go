package manage

import (
	"context"
	"os"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Init creates an empty bricks.yaml.
func Init(_ context.Context, _ []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	path, err := manifestPath(flags, deps)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return failure.Domain("%s already exists.", path)
	}

	if err := brick.NewManifest(path).Save(); err != nil {
		return failure.Domain("Could not write %s: %v", path, err)
	}

	deps.Printf("%s %s\n", deps.Styler.Success("Created"), path)
	return nil
}
