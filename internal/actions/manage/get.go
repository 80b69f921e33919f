package manage

import (
	"context"

	"github.com/brickyard-dev/brick/internal/dispatchers"
)

// Get fetches every brick of the manifest into the cache, stopping at the
// first failure.
func Get(ctx context.Context, _ []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	m, err := loadManifest(flags, deps)
	if err != nil {
		return err
	}

	names := m.Names()
	for _, name := range names {
		entry, err := deps.Cache.Fetch(ctx, m, name, m.Bricks[name])
		if err != nil {
			return err
		}
		deps.Printf("%s %s %s\n", deps.Styler.Success("✓"), name, entry.Version)
	}

	deps.Printf("Fetched %d brick(s)\n", len(names))
	return nil
}
