package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/raphi011/grit/internal/config"
	"github.com/raphi011/grit/internal/discovery"
	"github.com/raphi011/grit/internal/hook"
	"github.com/raphi011/grit/internal/log"
	"github.com/raphi011/grit/internal/output"
)

// testSetup wires a runner with registered definitions and captured streams.
func testSetup(t *testing.T, defs ...hook.Definition) (*Runner, context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	eng := discovery.New(t.TempDir(), config.Default())
	eng.Extra = defs

	var stdout, stderr bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&stderr, false, false))
	ctx = output.WithPrinter(ctx, &stdout)

	return New(eng), ctx, &stdout, &stderr
}

func funcHook(name string, run func(ctx context.Context, hc hook.Context) (hook.Result, error)) hook.Definition {
	return hook.Func{HookName: name, Run: run}
}

func TestRunSuccess(t *testing.T) {
	r, ctx, stdout, stderr := testSetup(t, funcHook("pre-commit", func(ctx context.Context, hc hook.Context) (hook.Result, error) {
		return hook.OK("all checks passed"), nil
	}))

	code, err := r.Run(ctx, "pre-commit", nil, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if stdout.String() != "all checks passed\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestRunFailureMessageGoesToStderr(t *testing.T) {
	r, ctx, stdout, stderr := testSetup(t, funcHook("pre-commit", func(ctx context.Context, hc hook.Context) (hook.Result, error) {
		return hook.Result{Success: false, Message: "lint failed", ExitCode: 1}, nil
	}))

	code, err := r.Run(ctx, "pre-commit", nil, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stderr.String() != "lint failed\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestRunNormalizesExitCode(t *testing.T) {
	r, ctx, _, _ := testSetup(t, funcHook("pre-commit", func(ctx context.Context, hc hook.Context) (hook.Result, error) {
		// Failed result without an explicit code must not exit 0.
		return hook.Result{Success: false}, nil
	}))

	code, err := r.Run(ctx, "pre-commit", nil, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunExplicitExitCode(t *testing.T) {
	r, ctx, _, _ := testSetup(t, funcHook("pre-commit", func(ctx context.Context, hc hook.Context) (hook.Result, error) {
		return hook.Result{Success: false, ExitCode: 7}, nil
	}))

	code, _ := r.Run(ctx, "pre-commit", nil, nil)
	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

func TestRunContainsExecutionError(t *testing.T) {
	r, ctx, _, stderr := testSetup(t, funcHook("pre-commit", func(ctx context.Context, hc hook.Context) (hook.Result, error) {
		return hook.Result{}, fmt.Errorf("boom")
	}))

	code, err := r.Run(ctx, "pre-commit", nil, nil)
	if err != nil {
		t.Fatalf("Run() error = %v, faults must be contained", err)
	}
	if code == 0 {
		t.Error("exit code = 0 for faulted hook")
	}
	if stderr.Len() == 0 {
		t.Error("no diagnostic emitted for faulted hook")
	}
}

func TestRunContainsPanic(t *testing.T) {
	r, ctx, _, stderr := testSetup(t, funcHook("pre-commit", func(ctx context.Context, hc hook.Context) (hook.Result, error) {
		panic("hook bug")
	}))

	code, err := r.Run(ctx, "pre-commit", nil, nil)
	if err != nil {
		t.Fatalf("Run() error = %v, panics must be contained", err)
	}
	if code == 0 {
		t.Error("exit code = 0 for panicked hook")
	}
	if stderr.Len() == 0 {
		t.Error("no diagnostic emitted for panicked hook")
	}
}

func TestRunNotFound(t *testing.T) {
	r, ctx, _, _ := testSetup(t, funcHook("pre-commit", func(ctx context.Context, hc hook.Context) (hook.Result, error) {
		return hook.OK(""), nil
	}))

	code, err := r.Run(ctx, "pre-comit", nil, nil)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Run() error = %v, want NotFoundError", err)
	}
	if code != ExitNotFound {
		t.Errorf("exit code = %d, want %d", code, ExitNotFound)
	}
	if len(notFound.Suggestions) == 0 || notFound.Suggestions[0] != "pre-commit" {
		t.Errorf("Suggestions = %v, want pre-commit first", notFound.Suggestions)
	}
}

func TestRunPassesContext(t *testing.T) {
	var got hook.Context
	r, ctx, _, _ := testSetup(t, funcHook("pre-push", func(ctx context.Context, hc hook.Context) (hook.Result, error) {
		got = hc
		return hook.OK(""), nil
	}))

	stdin := []string{"refs/heads/main abc refs/heads/main def"}
	args := []string{"origin", "git@example.com:repo.git"}
	if _, err := r.Run(ctx, "pre-push", stdin, args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got.HookName != "pre-push" {
		t.Errorf("HookName = %q", got.HookName)
	}
	if len(got.StdinLines) != 1 || got.StdinLines[0] != stdin[0] {
		t.Errorf("StdinLines = %v", got.StdinLines)
	}
	if len(got.Args) != 2 || got.Args[0] != "origin" {
		t.Errorf("Args = %v", got.Args)
	}
	if got.ProjectRoot == "" {
		t.Error("ProjectRoot not set")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"not found", &NotFoundError{Name: "x"}, ExitNotFound},
		{"wrapped not found", fmt.Errorf("run: %w", &NotFoundError{Name: "x"}), ExitNotFound},
		{"plain error", errors.New("boom"), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{
		Name:        "pre-comit",
		Suggestions: []string{"pre-commit"},
		Searched:    []string{"/repo/githooks"},
	}
	msg := err.Error()
	for _, want := range []string{`"pre-comit"`, "pre-commit", "/repo/githooks"} {
		if !bytes.Contains([]byte(msg), []byte(want)) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}
}
