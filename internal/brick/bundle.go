package brick

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BundleFile is one file of a bundle. Data is base64 in JSON.
type BundleFile struct {
	Path string `json:"path"`
	Data []byte `json:"data"`
}

// Bundle is a brick packed into a single JSON document.
type Bundle struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Version     string       `json:"version"`
	Description string       `json:"description,omitempty"`
	Files       []BundleFile `json:"files"`
}

// NewBundle packs the brick in dir: brick.yaml and every file under
// __brick__, with slash-separated relative paths.
func NewBundle(dir string) (*Bundle, error) {
	b, err := Load(dir)
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{
		ID:          uuid.NewString(),
		Name:        b.Name,
		Version:     b.Version,
		Description: b.Description,
	}

	manifest, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	bundle.Files = append(bundle.Files, BundleFile{Path: ManifestFile, Data: manifest})

	root := filepath.Join(dir, TemplateDir)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		bundle.Files = append(bundle.Files, BundleFile{Path: filepath.ToSlash(rel), Data: data})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", TemplateDir, err)
	}

	return bundle, nil
}

// ParseBundle decodes a bundle document and checks its brick.yaml.
func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("invalid bundle: %w", err)
	}
	if _, err := b.Brick(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Brick returns the parsed brick.yaml carried by the bundle.
func (b *Bundle) Brick() (*Brick, error) {
	for _, f := range b.Files {
		if f.Path == ManifestFile {
			return Parse(f.Data)
		}
	}
	return nil, fmt.Errorf("invalid bundle: missing %s", ManifestFile)
}

// Marshal encodes the bundle as JSON.
func (b *Bundle) Marshal() ([]byte, error) {
	return json.Marshal(b)
}

// Unpack writes every file under dest, refusing paths that escape it.
func (b *Bundle) Unpack(dest string) error {
	for _, f := range b.Files {
		target, err := safeJoin(dest, f.Path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(target, f.Data, 0644); err != nil {
			return err
		}
	}
	return nil
}

func safeJoin(dest, rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid bundle: path %q escapes the output directory", rel)
	}
	return filepath.Join(dest, clean), nil
}
