package brick

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// ResolveVersion returns the newest version satisfying constraint. An empty
// constraint accepts any stable version. Unparseable versions are ignored.
func ResolveVersion(constraint string, versions []string) (string, error) {
	if constraint == "" {
		constraint = "*"
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return "", fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	var candidates []*semver.Version
	for _, raw := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		if c.Check(v) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no version matches %q", constraint)
	}

	sort.Sort(semver.Collection(candidates))
	return candidates[len(candidates)-1].Original(), nil
}
