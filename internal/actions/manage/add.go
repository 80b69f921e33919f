package manage

import (
	"context"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Add records a brick in the manifest and fetches it. The manifest is only
// written once the fetch succeeded.
func Add(ctx context.Context, args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	name := args[0]
	if !brick.ValidName(name) {
		return failure.Semantic("", "Invalid brick name %q: use lowercase letters, digits and underscores.", name)
	}

	src := sourceFromFlags(flags)
	if err := src.Validate(); err != nil {
		return failure.Semantic("", "Invalid source for %s: %v.", name, err)
	}
	if src.Git == nil && (flags.String("--ref", "") != "" || flags.String("--git-path", "") != "") {
		return failure.Semantic("", "--ref and --git-path require --git.")
	}

	m, err := loadManifest(flags, deps)
	if err != nil {
		return err
	}

	entry, err := deps.Cache.Fetch(ctx, m, name, src)
	if err != nil {
		return err
	}

	_, existed := m.Bricks[name]
	m.Bricks[name] = src
	if err := m.Save(); err != nil {
		return failure.Domain("Could not write %s: %v", m.Path(), err)
	}

	verb := "Added"
	if existed {
		verb = "Updated"
	}
	deps.Printf("%s %s %s %s\n", deps.Styler.Success(verb), name, entry.Version, deps.Styler.Muted("("+describeSource(src)+")"))
	return nil
}

func sourceFromFlags(flags *dispatchers.ParsedFlags) brick.Source {
	src := brick.Source{
		Path:    flags.String("--path", ""),
		Version: flags.String("--version", ""),
	}
	if url := flags.String("--git", ""); url != "" {
		src.Git = &brick.GitSource{
			URL:  url,
			Ref:  flags.String("--ref", ""),
			Path: flags.String("--git-path", ""),
		}
	}
	return src
}
