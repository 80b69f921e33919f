package completions

import (
	"context"
	"fmt"
	"strings"

	"github.com/brickyard-dev/brick/internal/completions"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Completion prints the completion script for the shell named in args, or
// for the running shell when none is given.
func Completion(_ context.Context, args []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	usage := dispatchers.HelpText(deps.Root.Children["completion"], deps.Root)

	var shell completions.Shell
	if len(args) > 0 {
		shell = completions.Shell(args[0])
		if !shell.Valid() {
			return failure.Semantic(usage, "Unsupported shell %q (use %s)", args[0], shellList())
		}
	} else {
		shell = completions.RunningShell(deps.Getenv)
		if shell == "" {
			return failure.Semantic(usage, "Could not detect your shell, specify one of %s", shellList())
		}
	}

	if err := completions.Write(deps.Stdout, deps.Root, shell); err != nil {
		return fmt.Errorf("write %s completions: %w", shell, err)
	}

	if deps.Stderr != nil && len(args) == 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "# Add to %s:\n#   %s\n",
			completions.RcFile(shell), completions.SourceInstructions(deps.Root.Name, shell))
	}
	return nil
}

func shellList() string {
	var names []string
	for _, s := range completions.Shells() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
