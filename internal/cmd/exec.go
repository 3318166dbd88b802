// Package cmd provides helpers for executing external commands with proper
// error handling.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/raphi011/grit/internal/log"
)

// Result holds the outcome of an external command.
// A nonzero exit code is data, not an error.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// RunContext executes name with args in dir, feeding stdin and capturing
// both output streams. The command's exit code is reported in the Result;
// an error is returned only when the command could not be run at all.
func RunContext(ctx context.Context, dir string, stdin io.Reader, name string, args ...string) (Result, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = stdin

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, exec.ErrNotFound):
		// Match the shell's convention for a missing command.
		res.ExitCode = 127
		res.Stderr = fmt.Sprintf("command not found: %s", name)
		return res, nil
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("run %s: %w", name, err)
	}
}
