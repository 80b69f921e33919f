// Package cache fetches bricks into the local cache directory and keeps the
// cache index in the store up to date.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brickyard-dev/brick/internal/brick"
	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Cache stores fetched bricks under Dir. Path bricks are only recorded;
// git and registry bricks are copied in.
type Cache struct {
	Dir      string
	Store    domain.BrickStore
	Registry domain.RegistryClient
	Git      domain.GitProvider
	Logger   domain.Logger
	Now      func() time.Time
}

// New creates a Cache rooted at dir.
func New(dir string, store domain.BrickStore, registry domain.RegistryClient, git domain.GitProvider, logger domain.Logger) *Cache {
	return &Cache{
		Dir:      dir,
		Store:    store,
		Registry: registry,
		Git:      git,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Fetch brings the brick name of manifest m into the cache, replacing any
// previous copy, and records it in the index.
func (c *Cache) Fetch(ctx context.Context, m *brick.Manifest, name string, src brick.Source) (domain.CachedBrick, error) {
	key := m.CacheKey(name, src)
	c.Logger.Debug("cache: fetching %s (%s)", name, key)

	var (
		dir string
		err error
	)
	switch src.Kind() {
	case domain.SourcePath:
		dir = m.ResolvePath(src)
	case domain.SourceGit:
		dir, err = c.fetchGit(ctx, src.Git)
	default:
		dir, err = c.fetchRegistry(ctx, name, src.Version)
	}
	if err != nil {
		return domain.CachedBrick{}, err
	}

	b, err := brick.Load(dir)
	if err != nil {
		if errors.Is(err, brick.ErrNotBrick) {
			return domain.CachedBrick{}, failure.Domain("No %s found at %s for brick %q.", brick.ManifestFile, dir, name)
		}
		return domain.CachedBrick{}, failure.Domain("Brick %q is invalid: %v", name, err)
	}

	entry := domain.CachedBrick{
		Key:       key,
		Name:      name,
		Version:   b.Version,
		Source:    src.Kind(),
		Location:  dir,
		FetchedAt: c.Now().UTC(),
	}
	if err := c.Store.Put(entry); err != nil {
		return domain.CachedBrick{}, fmt.Errorf("record %s in cache index: %w", name, err)
	}

	stored, _, err := c.Store.Find(key)
	if err != nil {
		return entry, nil
	}
	return stored, nil
}

// Resolve returns the cached copy of name, fetching it when the index has
// no entry or the files are gone. A name missing from m is a Domain error.
func (c *Cache) Resolve(ctx context.Context, m *brick.Manifest, name string) (domain.CachedBrick, error) {
	src, ok := m.Bricks[name]
	if !ok {
		return domain.CachedBrick{}, failure.Domain("Could not find a brick named %q.", name)
	}

	entry, found, err := c.Store.Find(m.CacheKey(name, src))
	if err != nil {
		return domain.CachedBrick{}, fmt.Errorf("read cache index: %w", err)
	}
	if found {
		if _, err := os.Stat(filepath.Join(entry.Location, brick.ManifestFile)); err == nil {
			return entry, nil
		}
		c.Logger.Debug("cache: %s is indexed but missing on disk", name)
	}
	return c.Fetch(ctx, m, name, src)
}

// Evict drops name from the index and deletes its cached files. Path
// bricks keep their files.
func (c *Cache) Evict(m *brick.Manifest, name string, src brick.Source) error {
	key := m.CacheKey(name, src)
	entry, found, err := c.Store.Find(key)
	if err != nil {
		return fmt.Errorf("read cache index: %w", err)
	}
	if !found {
		return nil
	}

	if entry.Source != domain.SourcePath && c.owns(entry.Location) {
		if err := os.RemoveAll(entry.Location); err != nil {
			return fmt.Errorf("remove %s: %w", entry.Location, err)
		}
	}
	return c.Store.Delete(key)
}

// Clear deletes every cached file and index entry, returning the number of
// entries removed.
func (c *Cache) Clear() (int64, error) {
	if err := os.RemoveAll(c.Dir); err != nil {
		return 0, fmt.Errorf("remove %s: %w", c.Dir, err)
	}
	return c.Store.Clear()
}

func (c *Cache) owns(path string) bool {
	rel, err := filepath.Rel(c.Dir, path)
	return err == nil && rel != "." && !strings.HasPrefix(rel, "..")
}

// GitDir returns the clone directory of url at ref.
func (c *Cache) GitDir(url, ref string) string {
	sum := sha256.Sum256([]byte(url + "#" + ref))
	return filepath.Join(c.Dir, "git", hex.EncodeToString(sum[:])[:12])
}

func (c *Cache) fetchGit(ctx context.Context, g *brick.GitSource) (string, error) {
	dest := c.GitDir(g.URL, g.Ref)
	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("remove %s: %w", dest, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", err
	}

	if err := c.Git.Clone(ctx, g.URL, g.Ref, dest); err != nil {
		return "", failure.ExternalProcess(err, "Could not clone %s", g.URL)
	}
	return filepath.Join(dest, filepath.FromSlash(g.Path)), nil
}

func (c *Cache) fetchRegistry(ctx context.Context, name, constraint string) (string, error) {
	versions, err := c.Registry.Versions(ctx, name)
	if err != nil {
		return "", err
	}
	version, err := brick.ResolveVersion(constraint, versions)
	if err != nil {
		return "", failure.Domain("Could not resolve a version of %q: %v", name, err)
	}

	data, err := c.Registry.Download(ctx, name, version)
	if err != nil {
		return "", err
	}
	bundle, err := brick.ParseBundle(data)
	if err != nil {
		return "", failure.ExternalProcess(err, "The registry sent an invalid bundle for %s %s", name, version)
	}

	dest := filepath.Join(c.Dir, "registry", name, version)
	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("remove %s: %w", dest, err)
	}
	if err := bundle.Unpack(dest); err != nil {
		return "", fmt.Errorf("unpack %s %s: %w", name, version, err)
	}
	return dest, nil
}
