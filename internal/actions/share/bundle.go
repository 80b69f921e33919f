package share

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Bundle packs the brick at args[0] into <name>.bundle.
func Bundle(_ context.Context, args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	b, err := loadBundle(args[0])
	if err != nil {
		return err
	}

	data, err := b.Marshal()
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}

	out, err := outputDir(flags.String("--output-dir", ""), deps)
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return failure.Domain("Could not create %s: %v", out, err)
	}

	path := filepath.Join(out, b.Name+brick.BundleExt)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return failure.Domain("Could not write %s: %v", path, err)
	}

	deps.Printf("%s %s %s (%d files) to %s\n", deps.Styler.Success("Bundled"), b.Name, b.Version, len(b.Files), path)
	return nil
}

// Unbundle restores the brick in the bundle file args[0] into
// <output-dir>/<name>.
func Unbundle(_ context.Context, args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return failure.Domain("Could not read %s: %v", args[0], err)
	}

	b, err := brick.ParseBundle(data)
	if err != nil {
		return failure.Domain("%s is not a valid bundle: %v", args[0], err)
	}

	out, err := outputDir(flags.String("--output-dir", ""), deps)
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	dest := filepath.Join(out, b.Name)
	if _, err := os.Stat(dest); err == nil {
		return failure.Domain("%s already exists.", dest)
	}
	if err := b.Unpack(dest); err != nil {
		return failure.Domain("Could not unpack %s: %v", args[0], err)
	}

	deps.Printf("%s %s %s to %s\n", deps.Styler.Success("Unbundled"), b.Name, b.Version, dest)
	return nil
}

func loadBundle(dir string) (*brick.Bundle, error) {
	b, err := brick.NewBundle(dir)
	if errors.Is(err, brick.ErrNotBrick) {
		return nil, failure.Domain("Could not find %s in %s.", brick.ManifestFile, dir)
	}
	if err != nil {
		return nil, failure.Domain("Could not bundle %s: %v", dir, err)
	}
	return b, nil
}
