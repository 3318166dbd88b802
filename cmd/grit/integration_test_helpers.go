//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/raphi011/grit/internal/log"
	"github.com/raphi011/grit/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	cmds := [][]string{
		{"git", "init"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
	}
	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = repoPath
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to run %v: %v\n%s", args, err, out)
		}
	}

	return repoPath
}

// writeHookScript writes an executable script into the repo's githooks dir.
func writeHookScript(t *testing.T, repoPath, filename, body string) string {
	t.Helper()
	dir := filepath.Join(repoPath, "githooks")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create githooks dir: %v", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("failed to write hook script: %v", err)
	}
	return path
}

// testContext returns a command context with captured stdout and stderr.
func testContext(t *testing.T) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&stderr, false, false))
	ctx = output.WithPrinter(ctx, &stdout)
	return ctx, &stdout, &stderr
}

// inRepo points the command globals at the given repo for one test.
func inRepo(t *testing.T, repoPath string) {
	t.Helper()
	oldWorkDir, oldHookPaths := workDir, hookPaths
	workDir = repoPath
	hookPaths = nil
	t.Cleanup(func() {
		workDir = oldWorkDir
		hookPaths = oldHookPaths
	})
}
