// Package seed copies bundled example hooks into a project's githooks/
// directory so users can start from a working script instead of a blank
// file.
package seed

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed examples/*.sh
var examplesFS embed.FS

// TargetDir is the directory under the project root seeds are written to.
const TargetDir = "githooks"

// ExistsError reports a seed target that is already present; seeding
// never overwrites a user's hook.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("hook already exists at %s", e.Path)
}

// Available returns the bundled example names, sorted.
func Available() []string {
	entries, err := fs.ReadDir(examplesFS, "examples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}

// Seed writes the named example into <projectRoot>/githooks/, creating
// the directory if needed, and returns the written path. Fails with an
// *ExistsError when the target file already exists.
func Seed(projectRoot, name string) (string, error) {
	data, err := fs.ReadFile(examplesFS, "examples/"+name+".sh")
	if err != nil {
		return "", fmt.Errorf("example %q not found (available: %s)", name, strings.Join(Available(), ", "))
	}

	dir := filepath.Join(projectRoot, TargetDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	target := filepath.Join(dir, name+".sh")
	if _, err := os.Stat(target); err == nil {
		return "", &ExistsError{Path: target}
	}

	if err := os.WriteFile(target, data, 0o755); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return target, nil
}
