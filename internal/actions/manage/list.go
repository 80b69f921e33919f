package manage

import (
	"context"
	"fmt"

	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/format"
)

// List prints the bricks of the manifest with their cache status.
func List(_ context.Context, _ []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	m, err := loadManifest(flags, deps)
	if err != nil {
		return err
	}

	names := m.Names()
	if len(names) == 0 {
		deps.Printf("No bricks in %s\n", m.Path())
		return nil
	}

	deps.Println(deps.Styler.Header(m.Path()))
	for _, name := range names {
		src := m.Bricks[name]

		entry, found, err := deps.Store.Find(m.CacheKey(name, src))
		if err != nil {
			return fmt.Errorf("read cache index: %w", err)
		}

		if !found {
			deps.Printf("  %s %s %s\n", name, deps.Styler.Warning("not fetched"), deps.Styler.Muted(describeSource(src)))
			continue
		}
		deps.Printf("  %s %s %s %s\n", name, deps.Styler.Success(entry.Version), deps.Styler.Muted(describeSource(src)),
			deps.Styler.Muted("fetched "+format.Ago(deps.Now(), entry.FetchedAt)))
	}
	return nil
}
