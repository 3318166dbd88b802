// Package git locates git repositories on disk.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNoRepository indicates no enclosing git repository was found
var ErrNoRepository = fmt.Errorf("not a git repository (no .git found in any parent directory)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsRepo checks if a path is a git repository (has .git dir or file)
func IsRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree)
	return info.IsDir() || info.Mode().IsRegular()
}

// FindRoot walks upward from dir looking for a directory containing .git.
// Returns the absolute repository root, or ErrNoRepository if none of the
// ancestors is a repository.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for current := abs; ; {
		if IsRepo(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNoRepository
		}
		current = parent
	}
}

// HooksDir returns the hooks directory for a repository root.
// The directory is not required to exist.
func HooksDir(root string) string {
	return filepath.Join(root, ".git", "hooks")
}
