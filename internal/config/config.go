// Package config loads the per-project grit configuration.
//
// A project may carry a githooks.toml at its root:
//
//	hook_paths = ["githooks", "scripts/hooks"]
//
//	[hooks.pre-commit]
//	command = "go test ./..."
//	description = "Run the test suite"
//
// hook_paths overrides the default search paths for discovered script
// hooks; [hooks.NAME] tables declare command hooks inline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the project config file, looked up at the project root.
const FileName = "githooks.toml"

// DefaultHookPath is the search directory used when no config overrides it.
const DefaultHookPath = "githooks"

// Hook declares a command hook in a [hooks.NAME] table.
type Hook struct {
	Command     string `toml:"command"`
	Description string `toml:"description"`
}

// Config holds the project configuration.
type Config struct {
	HookPaths []string        `toml:"hook_paths"`
	Hooks     map[string]Hook `toml:"-"` // parsed from [hooks.NAME] sections
	// Path is the config file the values came from, empty when defaulted.
	Path string `toml:"-"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		HookPaths: []string{DefaultHookPath},
		Hooks:     map[string]Hook{},
	}
}

// rawConfig is used for initial TOML parsing before processing hooks
type rawConfig struct {
	HookPaths []string       `toml:"hook_paths"`
	Hooks     map[string]any `toml:"hooks"`
}

// Load reads githooks.toml from the project root.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load(projectRoot string) (Config, error) {
	path := filepath.Join(projectRoot, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := Config{
		HookPaths: raw.HookPaths,
		Hooks:     parseHooks(raw.Hooks),
		Path:      path,
	}
	if len(cfg.HookPaths) == 0 {
		cfg.HookPaths = []string{DefaultHookPath}
	}

	for name, hook := range cfg.Hooks {
		if hook.Command == "" {
			return Default(), fmt.Errorf("invalid hook %q in %s: command must not be empty", name, path)
		}
	}

	return cfg, nil
}

// parseHooks extracts [hooks.NAME] tables from the raw toml value.
func parseHooks(raw map[string]any) map[string]Hook {
	hooks := make(map[string]Hook)

	for key, value := range raw {
		// Hook definitions are tables
		hookMap, ok := value.(map[string]any)
		if !ok {
			continue
		}
		hook := Hook{}
		if cmd, ok := hookMap["command"].(string); ok {
			hook.Command = cmd
		}
		if desc, ok := hookMap["description"].(string); ok {
			hook.Description = desc
		}
		hooks[key] = hook
	}

	return hooks
}
