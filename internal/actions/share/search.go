package share

import (
	"context"
	"strings"

	"github.com/brickyard-dev/brick/internal/dispatchers"
)

// Search lists registry bricks matching the query.
func Search(ctx context.Context, args []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	query := strings.Join(args, " ")

	results, err := deps.Registry.Search(ctx, query)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		deps.Printf("No bricks matching %q\n", query)
		return nil
	}

	width := 0
	for _, r := range results {
		width = max(width, len(r.Name))
	}
	for _, r := range results {
		deps.Printf("%-*s  %s  %s\n", width, r.Name, deps.Styler.Info(r.Version), deps.Styler.Muted(r.Description))
	}
	return nil
}
