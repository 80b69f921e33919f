package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
	"github.com/brickyard-dev/brick/internal/ui/prompt"
)

// Make renders a brick from the project or global manifest into the output
// directory. Variables come from --var, then prompts, then defaults.
func Make(ctx context.Context, args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	name := args[0]

	wd, err := deps.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	m, err := findManifest(name, filepath.Join(wd, brick.ProjectManifestFile), deps.GlobalManifest)
	if err != nil {
		return err
	}

	entry, err := deps.Cache.Resolve(ctx, m, name)
	if err != nil {
		return err
	}

	b, err := brick.Load(entry.Location)
	if err != nil {
		return failure.Domain("Brick %q is invalid: %v", name, err)
	}

	given, err := brick.ParseVarFlags(flags.Strings("--var"))
	if err != nil {
		return failure.Semantic("", "%v.", err)
	}

	data, err := b.ResolveVars(given, promptFunc(ctx, deps))
	var missing *brick.MissingVarsError
	switch {
	case errors.As(err, &missing):
		return failure.Semantic("", "%s Pass them with --var name=value.", missing.Error())
	case errors.Is(err, prompt.ErrCancelled):
		return failure.Domain("Cancelled.")
	case err != nil:
		return failure.Semantic("", "%v.", err)
	}

	out := flags.String("--output-dir", wd)
	deps.Logger.Debug("make: rendering %s %s from %s into %s", name, b.Version, entry.Location, out)

	result, err := brick.Render(entry.Location, out, data, flags.Has("--force"))
	if err != nil {
		return failure.Domain("Could not generate %s: %v", name, err)
	}

	for _, path := range result.Written {
		deps.Printf("  %s %s\n", deps.Styler.Success("+"), path)
	}
	for _, path := range result.Skipped {
		deps.Printf("  %s %s %s\n", deps.Styler.Warning("~"), path, deps.Styler.Muted("(exists, use --force to overwrite)"))
	}
	deps.Printf("Generated %d file(s) from %s %s\n", len(result.Written), name, b.Version)
	return nil
}

// findManifest returns the first manifest declaring name, trying the
// project manifest before the global one.
func findManifest(name string, candidates ...string) (*brick.Manifest, error) {
	for _, path := range candidates {
		m, err := brick.LoadManifest(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, failure.Domain("Could not read %s: %v", path, err)
		}
		if _, ok := m.Bricks[name]; ok {
			return m, nil
		}
	}
	return nil, failure.Domain("Could not find a brick named %q.", name)
}

func promptFunc(ctx context.Context, deps Dependencies) brick.PromptFunc {
	if deps.Ask == nil {
		return nil
	}
	return func(name string, v brick.Variable) (string, error) {
		question := v.Prompt
		if question == "" {
			question = name
		}
		def := ""
		if v.Default != nil {
			def = fmt.Sprint(v.Default)
		}
		return deps.Ask(ctx, question, def)
	}
}
