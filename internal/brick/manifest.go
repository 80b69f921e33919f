package brick

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/brickyard-dev/brick/internal/domain"
)

// ProjectManifestFile lists the bricks a project uses.
const ProjectManifestFile = "bricks.yaml"

// GitSource points at a brick inside a git repository.
type GitSource struct {
	URL  string `yaml:"url"`
	Ref  string `yaml:"ref,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// Source says where a brick comes from. Exactly one of Path, Git or
// Version is set; Version is a semver constraint against the registry.
type Source struct {
	Path    string     `yaml:"path,omitempty"`
	Git     *GitSource `yaml:"git,omitempty"`
	Version string     `yaml:"version,omitempty"`
}

// Kind returns domain.SourcePath, SourceGit or SourceRegistry.
func (s Source) Kind() string {
	switch {
	case s.Path != "":
		return domain.SourcePath
	case s.Git != nil:
		return domain.SourceGit
	default:
		return domain.SourceRegistry
	}
}

// Validate checks that exactly one origin is set and that a registry
// constraint parses.
func (s Source) Validate() error {
	set := 0
	if s.Path != "" {
		set++
	}
	if s.Git != nil {
		set++
		if s.Git.URL == "" {
			return errors.New("git source needs a url")
		}
	}
	if s.Version != "" {
		set++
		if _, err := semver.NewConstraint(s.Version); err != nil {
			return fmt.Errorf("invalid version constraint %q: %w", s.Version, err)
		}
	}
	if set > 1 {
		return errors.New("use only one of path, git or version")
	}
	return nil
}

// Manifest is the content of bricks.yaml.
type Manifest struct {
	Bricks map[string]Source `yaml:"bricks"`

	path string
}

// NewManifest returns an empty manifest that Save writes to path.
func NewManifest(path string) *Manifest {
	return &Manifest{Bricks: map[string]Source{}, path: path}
}

// LoadManifest reads the manifest at path. A missing file returns an error
// wrapping os.ErrNotExist.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := NewManifest(path)
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if m.Bricks == nil {
		m.Bricks = map[string]Source{}
	}
	for name, src := range m.Bricks {
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("%s: brick %q: %w", path, name, err)
		}
	}
	return m, nil
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Dir returns the directory relative path sources resolve against.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.path)
}

// Names returns the brick names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Bricks))
	for name := range m.Bricks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the manifest back to its path.
func (m *Manifest) Save() error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(m.Dir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0644)
}

// ResolvePath returns the absolute directory of a path source.
func (m *Manifest) ResolvePath(s Source) string {
	if filepath.IsAbs(s.Path) {
		return filepath.Clean(s.Path)
	}
	return filepath.Join(m.Dir(), s.Path)
}

// CacheKey is the unique key of a brick in the cache index.
func (m *Manifest) CacheKey(name string, s Source) string {
	switch s.Kind() {
	case domain.SourcePath:
		return "path:" + m.ResolvePath(s)
	case domain.SourceGit:
		return fmt.Sprintf("git:%s#%s:%s", s.Git.URL, s.Git.Ref, s.Git.Path)
	default:
		return "registry:" + name
	}
}
