package manage

import (
	"context"
	"fmt"

	"github.com/brickyard-dev/brick/internal/dispatchers"
)

// CacheClear deletes every cached brick and its index entry.
func CacheClear(_ context.Context, _ []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	n, err := deps.Cache.Clear()
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	deps.Printf("%s %d cached brick(s)\n", deps.Styler.Success("Cleared"), n)
	return nil
}
