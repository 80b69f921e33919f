// Package git fetches git-hosted bricks by running the git executable.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/log"
)

// refPattern accepts branch names, tags and commit hashes.
var refPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-./]+$`)

func isValidRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "-") || strings.Contains(ref, "..") {
		return false
	}
	return refPattern.MatchString(ref)
}

// Provider implements domain.GitProvider with the git executable.
type Provider struct {
	logger domain.Logger
	binary string
}

// NewProvider creates a Provider logging the commands it runs to logger.
func NewProvider(logger domain.Logger) *Provider {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Provider{logger: logger, binary: "git"}
}

// IsAvailable reports whether git is installed and runs.
func (p *Provider) IsAvailable() bool {
	path, err := exec.LookPath(p.binary)
	if err != nil {
		return false
	}
	return exec.Command(path, "--version").Run() == nil
}

// Clone makes a shallow clone of url into dest. An empty ref clones the
// default branch.
func (p *Provider) Clone(ctx context.Context, url, ref, dest string) error {
	if url == "" || strings.HasPrefix(url, "-") {
		return fmt.Errorf("invalid git url %q", url)
	}

	args := []string{"clone", "--depth", "1", "--quiet"}
	if ref != "" {
		if !isValidRef(ref) {
			return fmt.Errorf("invalid git ref %q", ref)
		}
		args = append(args, "--branch", ref)
	}
	args = append(args, "--", url, dest)

	_, err := p.run(ctx, args...)
	return err
}

// HeadCommit returns the commit checked out in dir.
func (p *Provider) HeadCommit(ctx context.Context, dir string) (string, error) {
	return p.run(ctx, "-C", dir, "rev-parse", "HEAD")
}

func (p *Provider) run(ctx context.Context, args ...string) (string, error) {
	p.logger.Debug("git: %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, p.binary, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		p.logger.Debug("git: command failed: %v", err)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{Args: args, Output: strings.TrimSpace(out.String()), Err: err}
		}
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

// CommandError is a git invocation that ran and exited non-zero.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git %s: %v", e.Args[0], e.Err)
	}
	return fmt.Sprintf("git %s: %v: %s", e.Args[0], e.Err, e.Output)
}

func (e *CommandError) Unwrap() error { return e.Err }

var _ domain.GitProvider = (*Provider)(nil)
