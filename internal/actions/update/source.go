package update

import (
	"context"
	"errors"
	"sync"

	"github.com/creativeprojects/go-selfupdate"
)

// Slug is the GitHub repository brick is released from.
const Slug = "brickyard-dev/brick"

// Release is a published build of brick.
type Release struct {
	Version string
	URL     string

	raw *selfupdate.Release
}

// VersionLookup returns the newest published version of a package.
type VersionLookup interface {
	LatestVersion(ctx context.Context, slug string) (string, error)
}

// ReleaseSource finds and installs releases for the update command.
type ReleaseSource interface {
	// Latest returns the newest release for this platform, or nil when
	// there is none.
	Latest(ctx context.Context, slug string) (*Release, error)
	// Install replaces the executable at execPath with rel.
	Install(ctx context.Context, rel *Release, execPath string) error
}

// GitHubSource implements VersionLookup and ReleaseSource with GitHub
// releases.
type GitHubSource struct {
	once    sync.Once
	updater *selfupdate.Updater
	err     error
}

// NewGitHubSource creates a source. No request is made until it is used.
func NewGitHubSource() *GitHubSource {
	return &GitHubSource{}
}

func (g *GitHubSource) init() (*selfupdate.Updater, error) {
	g.once.Do(func() {
		src, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
		if err != nil {
			g.err = err
			return
		}
		g.updater, g.err = selfupdate.NewUpdater(selfupdate.Config{Source: src})
	})
	return g.updater, g.err
}

// Latest implements ReleaseSource.
func (g *GitHubSource) Latest(ctx context.Context, slug string) (*Release, error) {
	updater, err := g.init()
	if err != nil {
		return nil, err
	}

	rel, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &Release{Version: rel.Version(), URL: rel.URL, raw: rel}, nil
}

// Install implements ReleaseSource.
func (g *GitHubSource) Install(ctx context.Context, rel *Release, execPath string) error {
	if rel == nil || rel.raw == nil {
		return errors.New("release was not detected by this source")
	}
	updater, err := g.init()
	if err != nil {
		return err
	}
	return updater.UpdateTo(ctx, rel.raw, execPath)
}

// LatestVersion implements VersionLookup.
func (g *GitHubSource) LatestVersion(ctx context.Context, slug string) (string, error) {
	rel, err := g.Latest(ctx, slug)
	if err != nil {
		return "", err
	}
	if rel == nil {
		return "", errors.New("no release found")
	}
	return rel.Version, nil
}

var (
	_ VersionLookup = (*GitHubSource)(nil)
	_ ReleaseSource = (*GitHubSource)(nil)
)
