// Package hook defines the data model for git hook execution: the
// Definition interface implemented by every hook variant, the immutable
// Context a hook receives, and the Result it returns.
package hook

import (
	"io"
	"strings"
)

// Context is an immutable snapshot of one hook invocation's inputs.
// It is constructed fresh per invocation and owned by the runner.
type Context struct {
	// HookName is the git lifecycle event name, e.g. "pre-commit".
	HookName string
	// StdinLines holds the payload git fed on stdin, split into lines.
	// Empty for hooks that receive no stdin.
	StdinLines []string
	// Args are the raw arguments git passed to the hook.
	Args []string
	// ProjectRoot is the absolute repository root.
	ProjectRoot string
}

// NewContext builds a Context from already-collected inputs.
func NewContext(name, root string, stdinLines, args []string) Context {
	return Context{
		HookName:    name,
		StdinLines:  stdinLines,
		Args:        args,
		ProjectRoot: root,
	}
}

// EmptyContext builds a Context with no stdin payload.
func EmptyContext(name, root string) Context {
	return NewContext(name, root, nil, nil)
}

// ReadStdinLines reads r to EOF and splits the content into lines.
// Stdin should only be consumed when it is piped; an interactive
// terminal yields no payload (git always pipes when it feeds hook data).
// Returns nil for empty input.
func ReadStdinLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// StdinLine returns the stdin line at index, or "" and false when out of range.
func (c Context) StdinLine(index int) (string, bool) {
	if index < 0 || index >= len(c.StdinLines) {
		return "", false
	}
	return c.StdinLines[index], true
}

// HasStdin returns true if git fed any data on stdin.
func (c Context) HasStdin() bool {
	return len(c.StdinLines) > 0
}

// Stdin reassembles the stdin payload for forwarding to a child process.
// Returns "" when there was no payload.
func (c Context) Stdin() string {
	if len(c.StdinLines) == 0 {
		return ""
	}
	return strings.Join(c.StdinLines, "\n") + "\n"
}
