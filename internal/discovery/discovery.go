// Package discovery locates hook definitions in a project by structural
// convention and builds the name→definition registry.
//
// Candidate sources, scanned in order:
//
//  1. [hooks.NAME] command tables declared in githooks.toml
//  2. script files under the configured search paths (default: githooks/)
//  3. backward-compatible *_hook files at the project root
//  4. definitions registered explicitly by the embedding program
//
// Scan order only affects how a duplicate is reported. Two sources
// defining the same hook name is a hard error, never a silent override.
package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/grit/internal/config"
	"github.com/raphi011/grit/internal/hook"
	"github.com/raphi011/grit/internal/log"
)

// Engine scans a project for hook definitions.
type Engine struct {
	ProjectRoot string
	Cfg         config.Config
	// SearchPaths overrides Cfg.HookPaths when non-nil (CLI --hook-paths).
	SearchPaths []string
	// Extra holds definitions registered in code, added after all
	// convention-based sources.
	Extra []hook.Definition
}

// New returns an engine for the given project root and config.
func New(projectRoot string, cfg config.Config) *Engine {
	return &Engine{ProjectRoot: projectRoot, Cfg: cfg}
}

// paths returns the effective search paths.
func (e *Engine) paths() []string {
	if len(e.SearchPaths) > 0 {
		return e.SearchPaths
	}
	if len(e.Cfg.HookPaths) > 0 {
		return e.Cfg.HookPaths
	}
	return []string{config.DefaultHookPath}
}

// SearchedDirs returns the absolute directories a discovery pass scans.
// Used for "hook not found" reporting.
func (e *Engine) SearchedDirs() []string {
	paths := e.paths()
	dirs := make([]string, 0, len(paths)+1)
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(e.ProjectRoot, p)
		}
		dirs = append(dirs, p)
	}
	return append(dirs, e.ProjectRoot)
}

// Discover builds a fresh registry from all sources.
// Returns a *DuplicateHookError when two sources claim the same name.
func (e *Engine) Discover(ctx context.Context) (*Registry, error) {
	l := log.FromContext(ctx)
	reg := NewRegistry()

	if err := e.addDeclared(reg); err != nil {
		return nil, err
	}

	for _, searchPath := range e.paths() {
		if err := e.scanDir(l, reg, searchPath); err != nil {
			return nil, err
		}
	}

	if err := e.scanRootHooks(l, reg); err != nil {
		return nil, err
	}

	for _, def := range e.Extra {
		if err := reg.Add(def, "registered"); err != nil {
			return nil, err
		}
	}

	l.Debugf("discovered %d hook(s)", reg.Len())
	return reg, nil
}

// addDeclared registers [hooks.NAME] command tables from the config.
func (e *Engine) addDeclared(reg *Registry) error {
	source := e.Cfg.Path
	if source == "" {
		source = config.FileName
	}
	for name, h := range e.Cfg.Hooks {
		def := hook.Command{HookName: name, CommandLine: h.Command, Description: h.Description}
		if err := reg.Add(def, source); err != nil {
			return err
		}
	}
	return nil
}

// scanDir registers every regular non-hidden file in a search path as a
// script hook. A missing directory is skipped: absence is not failure.
func (e *Engine) scanDir(l *log.Logger, reg *Registry, searchPath string) error {
	dir := searchPath
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(e.ProjectRoot, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			l.Debugf("hook path %s does not exist, skipping", dir)
			return nil
		}
		return fmt.Errorf("read hook path %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		def := hook.Script{HookName: NameFromFile(entry.Name()), Path: path}
		if err := reg.Add(def, path); err != nil {
			return err
		}
	}
	return nil
}

// scanRootHooks registers root-level *_hook files (legacy layout that
// predates the githooks/ directory).
func (e *Engine) scanRootHooks(l *log.Logger, reg *Registry) error {
	entries, err := os.ReadDir(e.ProjectRoot)
	if err != nil {
		return fmt.Errorf("read project root %s: %w", e.ProjectRoot, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		base := stripExtension(entry.Name())
		if !strings.HasSuffix(base, "_hook") || base == "_hook" {
			continue
		}
		path := filepath.Join(e.ProjectRoot, entry.Name())
		name := normalizeName(strings.TrimSuffix(base, "_hook"))
		l.Debugf("found legacy root hook %s (%s)", name, path)
		if err := reg.Add(hook.Script{HookName: name, Path: path}, path); err != nil {
			return err
		}
	}
	return nil
}

// NameFromFile derives a hook name from a script file name:
// the extension is dropped and underscores become hyphens, so
// pre_commit.sh and pre-commit both map to "pre-commit".
func NameFromFile(filename string) string {
	return normalizeName(stripExtension(filename))
}

func stripExtension(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

func normalizeName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
