package manage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

const flagGlobal = "--global"

// manifestPath returns the global manifest with --global, otherwise
// bricks.yaml in the working directory.
func manifestPath(flags *dispatchers.ParsedFlags, deps Dependencies) (string, error) {
	if flags.Has(flagGlobal) {
		return deps.GlobalManifest, nil
	}
	wd, err := deps.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(wd, brick.ProjectManifestFile), nil
}

// loadManifest loads the selected manifest. A missing project manifest is
// a Domain error; a missing global manifest starts out empty.
func loadManifest(flags *dispatchers.ParsedFlags, deps Dependencies) (*brick.Manifest, error) {
	path, err := manifestPath(flags, deps)
	if err != nil {
		return nil, err
	}

	m, err := brick.LoadManifest(path)
	switch {
	case err == nil:
		return m, nil
	case errors.Is(err, os.ErrNotExist) && flags.Has(flagGlobal):
		return brick.NewManifest(path), nil
	case errors.Is(err, os.ErrNotExist):
		return nil, failure.Domain("Could not find %s in %s, run brick init first.", brick.ProjectManifestFile, filepath.Dir(path))
	default:
		return nil, failure.Domain("Could not read %s: %v", path, err)
	}
}

func describeSource(src brick.Source) string {
	switch {
	case src.Path != "":
		return "path " + src.Path
	case src.Git != nil:
		s := "git " + src.Git.URL
		if src.Git.Ref != "" {
			s += "@" + src.Git.Ref
		}
		if src.Git.Path != "" {
			s += " (" + src.Git.Path + ")"
		}
		return s
	case src.Version != "":
		return "registry " + src.Version
	default:
		return "registry"
	}
}
