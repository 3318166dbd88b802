package git

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	t.Run("from the root itself", func(t *testing.T) {
		got, err := FindRoot(root)
		if err != nil {
			t.Fatalf("FindRoot() error = %v", err)
		}
		if got != root {
			t.Errorf("FindRoot() = %q, want %q", got, root)
		}
	})

	t.Run("from a nested directory", func(t *testing.T) {
		got, err := FindRoot(nested)
		if err != nil {
			t.Fatalf("FindRoot() error = %v", err)
		}
		if got != root {
			t.Errorf("FindRoot() = %q, want %q", got, root)
		}
	})

	t.Run("outside any repository", func(t *testing.T) {
		if _, err := FindRoot(t.TempDir()); err == nil {
			t.Error("FindRoot() should fail outside a repository")
		}
	})
}

func TestFindRootWorktreeGitFile(t *testing.T) {
	// A linked worktree has a .git file instead of a directory.
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: /elsewhere\n"), 0o644); err != nil {
		t.Fatalf("write .git file: %v", err)
	}

	got, err := FindRoot(root)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("FindRoot() = %q, want %q", got, root)
	}
}

func TestHooksDir(t *testing.T) {
	if got, want := HooksDir("/repo"), filepath.Join("/repo", ".git", "hooks"); got != want {
		t.Errorf("HooksDir() = %q, want %q", got, want)
	}
}
