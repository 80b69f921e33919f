package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRepo creates a temporary git repository with one commit.
func newTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	for _, args := range [][]string{
		{"init", "--quiet"},
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		require.NoError(t, cmd.Run(), "git %v", args)
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "brick.yaml"), []byte("name: hello\n"), 0644))

	for _, args := range [][]string{
		{"add", "brick.yaml"},
		{"commit", "--quiet", "-m", "Add brick"},
		{"tag", "v1.0.0"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		require.NoError(t, cmd.Run(), "git %v", args)
	}

	return dir
}

func TestIsValidRef(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"main", true},
		{"v1.0.0", true},
		{"feature/new-brick", true},
		{"a1b2c3d", true},
		{"", false},
		{"--upload-pack=evil", false},
		{"main;rm -rf", false},
		{"a..b", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			require.Equal(t, tt.want, isValidRef(tt.ref))
		})
	}
}

func TestClone(t *testing.T) {
	repo := newTestRepo(t)
	p := NewProvider(nil)
	dest := filepath.Join(t.TempDir(), "clone")

	require.NoError(t, p.Clone(context.Background(), "file://"+repo, "v1.0.0", dest))

	_, err := os.Stat(filepath.Join(dest, "brick.yaml"))
	require.NoError(t, err)

	head, err := p.HeadCommit(context.Background(), dest)
	require.NoError(t, err)
	require.Len(t, head, 40)
}

func TestClone_UnknownRef(t *testing.T) {
	repo := newTestRepo(t)
	p := NewProvider(nil)

	err := p.Clone(context.Background(), "file://"+repo, "does-not-exist", filepath.Join(t.TempDir(), "clone"))

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	require.Equal(t, "clone", cmdErr.Args[0])
}

func TestClone_RejectsOptionLikeInput(t *testing.T) {
	p := NewProvider(nil)

	require.Error(t, p.Clone(context.Background(), "--upload-pack=x", "", t.TempDir()))
	require.Error(t, p.Clone(context.Background(), "https://example.com/r.git", "-x", t.TempDir()))
}

func TestClone_MissingBinary(t *testing.T) {
	p := NewProvider(nil)
	p.binary = "brick-test-no-such-git"

	err := p.Clone(context.Background(), "https://example.com/r.git", "", t.TempDir())

	var execErr *exec.Error
	require.True(t, errors.As(err, &execErr))
	require.False(t, p.IsAvailable())
}
