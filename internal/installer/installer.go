// Package installer writes and removes the hook shims under .git/hooks.
//
// A shim is a small shell script git invokes directly; it re-enters grit's
// runner with the hook name, the project root baked in at install time,
// and git's arguments and stdin forwarded unchanged. Every generated shim
// carries a sentinel marker so install and uninstall can tell framework
// shims apart from hand-written hooks and refuse to touch the latter.
package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/raphi011/grit/internal/git"
)

// Sentinel marks a hook file as generated by grit. Changing it orphans
// every previously installed shim, so it is versioned.
const Sentinel = "grit:shim:v1"

// ForeignHookError reports an existing hook file that grit did not
// generate and therefore refuses to overwrite or delete.
type ForeignHookError struct {
	Path string
}

func (e *ForeignHookError) Error() string {
	return fmt.Sprintf("%s exists but was not installed by grit; refusing to touch it", e.Path)
}

// InstalledHook describes one file in .git/hooks.
type InstalledHook struct {
	Name string
	// Owned is true when the file carries the grit sentinel.
	Owned bool
}

// Installer writes shims for one repository.
type Installer struct {
	ProjectRoot string
	// Binary is the absolute grit executable path baked into shims.
	Binary string
	// HookPaths are search path overrides baked into shims so that a
	// shim invocation discovers the same hooks the install did.
	HookPaths []string
}

// New returns an installer for the project root, resolving the current
// executable as the shim's re-entry binary.
func New(projectRoot string) (*Installer, error) {
	bin, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve grit binary: %w", err)
	}
	return &Installer{ProjectRoot: projectRoot, Binary: bin}, nil
}

// Install writes the shim for name into .git/hooks, executable.
// Fails when the hooks directory doesn't exist or a foreign hook file is
// already present. Overwriting a grit-owned shim is allowed and idempotent.
func (i *Installer) Install(name string) error {
	hooksDir := git.HooksDir(i.ProjectRoot)
	if info, err := os.Stat(hooksDir); err != nil || !info.IsDir() {
		return fmt.Errorf("hooks directory not found: %s", hooksDir)
	}

	target := filepath.Join(hooksDir, name)
	if _, err := os.Stat(target); err == nil && !IsOwned(target) {
		return &ForeignHookError{Path: target}
	}

	script := shimScript(i.Binary, i.ProjectRoot, name, i.HookPaths)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		return fmt.Errorf("write hook shim %s: %w", target, err)
	}
	// WriteFile doesn't chmod an existing file; reinstalls must stay executable.
	if err := os.Chmod(target, 0o755); err != nil {
		return fmt.Errorf("chmod hook shim %s: %w", target, err)
	}
	return nil
}

// Uninstall removes the shim for name. Returns false without error when
// no shim exists; returns a *ForeignHookError, leaving the file in place,
// when a hook file is present but lacks the sentinel.
func (i *Installer) Uninstall(name string) (bool, error) {
	target := filepath.Join(git.HooksDir(i.ProjectRoot), name)

	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat hook %s: %w", target, err)
	}
	if !IsOwned(target) {
		return false, &ForeignHookError{Path: target}
	}
	if err := os.Remove(target); err != nil {
		return false, fmt.Errorf("remove hook shim %s: %w", target, err)
	}
	return true, nil
}

// Installed lists the hook files in .git/hooks, flagging which ones grit
// owns. Git's *.sample placeholders are skipped. Returns an empty list
// when the hooks directory doesn't exist.
func (i *Installer) Installed() ([]InstalledHook, error) {
	hooksDir := git.HooksDir(i.ProjectRoot)
	entries, err := os.ReadDir(hooksDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read hooks directory %s: %w", hooksDir, err)
	}

	var installed []InstalledHook
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), ".sample") {
			continue
		}
		path := filepath.Join(hooksDir, entry.Name())
		installed = append(installed, InstalledHook{Name: entry.Name(), Owned: IsOwned(path)})
	}
	sort.Slice(installed, func(a, b int) bool { return installed[a].Name < installed[b].Name })
	return installed, nil
}

// IsOwned reports whether the file at path carries the grit sentinel.
func IsOwned(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), Sentinel)
}

// shimScript renders the hook shim. The project root is baked in so the
// shim works regardless of the directory git invokes it from; stdin flows
// through exec untouched.
func shimScript(binary, projectRoot, name string, hookPaths []string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "# generated by grit; do not edit (%s)\n", Sentinel)
	fmt.Fprintf(&b, "# project: %s\n", projectRoot)
	fmt.Fprintf(&b, "# hook: %s\n", name)
	fmt.Fprintf(&b, "cd %s || exit 1\n", shellQuote(projectRoot))
	fmt.Fprintf(&b, "exec %s run %s", shellQuote(binary), shellQuote(name))
	for _, p := range hookPaths {
		fmt.Fprintf(&b, " --hook-paths %s", shellQuote(p))
	}
	b.WriteString(" -- \"$@\"\n")
	return b.String()
}

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
