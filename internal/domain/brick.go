package domain

import "time"

// Brick sources.
const (
	SourcePath     = "path"
	SourceGit      = "git"
	SourceRegistry = "registry"
)

// CachedBrick is an index entry for a brick available on disk.
type CachedBrick struct {
	ID        string
	Key       string // canonical source description, unique
	Name      string
	Version   string
	Source    string
	Location  string // directory holding brick.yaml
	FetchedAt time.Time
}

// Credentials are the stored login of one registry.
type Credentials struct {
	Registry  string
	Token     string
	Email     string
	CreatedAt time.Time
}

// RegistryBrick is a search result from the registry.
type RegistryBrick struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
}
