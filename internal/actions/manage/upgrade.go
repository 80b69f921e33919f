package manage

import (
	"context"

	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/domain"
)

// Upgrade refetches registry bricks at the newest version their constraint
// allows and reports which versions changed.
func Upgrade(ctx context.Context, _ []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	m, err := loadManifest(flags, deps)
	if err != nil {
		return err
	}

	upgraded := 0
	for _, name := range m.Names() {
		src := m.Bricks[name]
		if src.Kind() != domain.SourceRegistry {
			deps.Logger.Debug("upgrade: skipping %s (%s)", name, src.Kind())
			continue
		}

		previous, found, err := deps.Store.Find(m.CacheKey(name, src))
		if err != nil {
			return err
		}

		entry, err := deps.Cache.Fetch(ctx, m, name, src)
		if err != nil {
			return err
		}

		switch {
		case !found:
			deps.Printf("%s %s %s\n", deps.Styler.Success("+"), name, entry.Version)
			upgraded++
		case previous.Version != entry.Version:
			deps.Printf("%s %s %s → %s\n", deps.Styler.Success("↑"), name,
				deps.Styler.Muted(previous.Version), entry.Version)
			upgraded++
		default:
			deps.Printf("  %s %s %s\n", name, entry.Version, deps.Styler.Muted("(up to date)"))
		}
	}

	if upgraded == 0 {
		deps.Println("All bricks are up to date.")
		return nil
	}
	deps.Printf("Upgraded %d brick(s)\n", upgraded)
	return nil
}
