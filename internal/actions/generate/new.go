package generate

import (
	"context"
	"fmt"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

// New scaffolds a brick directory.
func New(_ context.Context, args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	name := args[0]
	if !brick.ValidName(name) {
		return failure.Semantic("", "Invalid brick name %q: use lowercase letters, digits and underscores.", name)
	}

	parent := flags.String("--output-dir", "")
	if parent == "" {
		wd, err := deps.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		parent = wd
	}

	dir, err := brick.Scaffold(parent, name, flags.String("--description", ""))
	if err != nil {
		return failure.Domain("Could not create brick %s: %v", name, err)
	}

	deps.Printf("%s brick %s in %s\n", deps.Styler.Success("Created"), name, dir)
	return nil
}
