// Package brick reads, writes, bundles and renders bricks: reusable
// templates made of a brick.yaml and a __brick__ directory.
package brick

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestFile describes a brick.
	ManifestFile = "brick.yaml"
	// TemplateDir holds the files a brick renders.
	TemplateDir = "__brick__"
	// BundleExt is appended to the brick name by bundle.
	BundleExt = ".bundle"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ErrNotBrick is returned by Load when dir has no brick.yaml.
var ErrNotBrick = errors.New("not a brick")

// Variable types understood by the renderer.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeNumber  = "number"
)

// Variable is one template input declared by a brick.
type Variable struct {
	Type        string `yaml:"type,omitempty"`
	Description string `yaml:"description,omitempty"`
	Default     any    `yaml:"default,omitempty"`
	Prompt      string `yaml:"prompt,omitempty"`
}

// Brick is the content of brick.yaml.
type Brick struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description,omitempty"`
	Version     string              `yaml:"version"`
	Vars        map[string]Variable `yaml:"vars,omitempty"`
}

// ValidName reports whether name can be used for a brick.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Validate checks the name, version and variable types.
func (b *Brick) Validate() error {
	if !ValidName(b.Name) {
		return fmt.Errorf("invalid brick name %q: use lowercase letters, digits and underscores", b.Name)
	}
	if _, err := semver.StrictNewVersion(b.Version); err != nil {
		return fmt.Errorf("invalid version %q for brick %q: %w", b.Version, b.Name, err)
	}
	for name, v := range b.Vars {
		switch v.Type {
		case "", TypeString, TypeBoolean, TypeNumber:
		default:
			return fmt.Errorf("variable %q has unknown type %q", name, v.Type)
		}
	}
	return nil
}

// Load reads and validates the brick in dir.
func Load(dir string) (*Brick, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotBrick)
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a brick.yaml document.
func Parse(data []byte) (*Brick, error) {
	var b Brick
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestFile, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Write stores b as dir/brick.yaml.
func Write(dir string, b *Brick) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ManifestFile), data, 0644)
}
