package cmd

import (
	"context"
	"strings"
	"testing"
)

func TestRunContext(t *testing.T) {
	ctx := context.Background()

	t.Run("captures stdout", func(t *testing.T) {
		res, err := RunContext(ctx, "", nil, "sh", "-c", "echo hello")
		if err != nil {
			t.Fatalf("RunContext() error = %v", err)
		}
		if !res.Success() || strings.TrimSpace(res.Stdout) != "hello" {
			t.Errorf("RunContext() = %+v", res)
		}
	})

	t.Run("nonzero exit is data not error", func(t *testing.T) {
		res, err := RunContext(ctx, "", nil, "sh", "-c", "echo oops >&2; exit 5")
		if err != nil {
			t.Fatalf("RunContext() error = %v", err)
		}
		if res.Success() {
			t.Error("Success() = true for exit 5")
		}
		if res.ExitCode != 5 {
			t.Errorf("ExitCode = %d, want 5", res.ExitCode)
		}
		if strings.TrimSpace(res.Stderr) != "oops" {
			t.Errorf("Stderr = %q", res.Stderr)
		}
	})

	t.Run("missing command maps to 127", func(t *testing.T) {
		res, err := RunContext(ctx, "", nil, "definitely-not-a-command-xyz")
		if err != nil {
			t.Fatalf("RunContext() error = %v", err)
		}
		if res.ExitCode != 127 {
			t.Errorf("ExitCode = %d, want 127", res.ExitCode)
		}
		if res.Stderr == "" {
			t.Error("Stderr should name the missing command")
		}
	})

	t.Run("feeds stdin", func(t *testing.T) {
		res, err := RunContext(ctx, "", strings.NewReader("payload\n"), "cat")
		if err != nil {
			t.Fatalf("RunContext() error = %v", err)
		}
		if res.Stdout != "payload\n" {
			t.Errorf("Stdout = %q", res.Stdout)
		}
	})

	t.Run("runs in dir", func(t *testing.T) {
		dir := t.TempDir()
		res, err := RunContext(ctx, dir, nil, "pwd")
		if err != nil {
			t.Fatalf("RunContext() error = %v", err)
		}
		if strings.TrimSpace(res.Stdout) == "" {
			t.Error("pwd produced no output")
		}
	})
}
