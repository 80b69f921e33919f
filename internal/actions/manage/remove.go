package manage

import (
	"context"

	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Remove deletes a brick from the manifest and evicts it from the cache.
func Remove(_ context.Context, args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	m, err := loadManifest(flags, deps)
	if err != nil {
		return err
	}

	name := args[0]
	src, ok := m.Bricks[name]
	if !ok {
		return failure.Domain("Could not find a brick named %q in %s.", name, m.Path())
	}

	if err := deps.Cache.Evict(m, name, src); err != nil {
		deps.Logger.Warn("remove: could not evict %s from the cache: %v", name, err)
	}

	delete(m.Bricks, name)
	if err := m.Save(); err != nil {
		return failure.Domain("Could not write %s: %v", m.Path(), err)
	}

	deps.Printf("%s %s\n", deps.Styler.Success("Removed"), name)
	return nil
}
