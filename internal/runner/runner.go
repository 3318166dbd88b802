// Package runner drives one hook invocation: discover, resolve, execute,
// report, exit. No state survives an invocation; git gets exactly one
// deterministic exit code per run.
package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/grit/internal/discovery"
	"github.com/raphi011/grit/internal/hook"
	"github.com/raphi011/grit/internal/log"
	"github.com/raphi011/grit/internal/output"
)

// Process exit codes. ExitNotFound is reserved so callers can tell
// "hook missing" apart from "hook ran and failed".
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitNotFound = 3
)

// NotFoundError reports a hook name absent from the registry.
type NotFoundError struct {
	Name        string
	Suggestions []string
	Searched    []string
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "hook %q not found", e.Name)
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	for _, dir := range e.Searched {
		fmt.Fprintf(&b, "\n  searched: %s", dir)
	}
	return b.String()
}

// ExitCode maps an error from Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return ExitNotFound
	}
	return ExitFailure
}

// Runner resolves and executes hooks against a discovery engine.
type Runner struct {
	engine *discovery.Engine
}

// New returns a runner using the given discovery engine.
func New(engine *discovery.Engine) *Runner {
	return &Runner{engine: engine}
}

// Run executes the named hook with the given stdin lines and arguments,
// emits its message, and returns the process exit code. The returned
// error covers failures above the execution boundary (discovery errors,
// unknown name); a hook that ran and failed yields a nonzero exit code
// with a nil error.
func (r *Runner) Run(ctx context.Context, name string, stdinLines, args []string) (int, error) {
	def, err := r.Resolve(ctx, name)
	if err != nil {
		return ExitCode(err), err
	}

	hc := hook.NewContext(name, r.engine.ProjectRoot, stdinLines, args)
	result := r.Execute(ctx, def, hc)
	r.report(ctx, result)
	return result.ExitCode, nil
}

// Resolve discovers the registry and looks up name.
// Returns a *NotFoundError with fuzzy suggestions when the name is unknown.
func (r *Runner) Resolve(ctx context.Context, name string) (hook.Definition, error) {
	reg, err := r.engine.Discover(ctx)
	if err != nil {
		return nil, err
	}
	def, ok := reg.Lookup(name)
	if !ok {
		return nil, &NotFoundError{
			Name:        name,
			Suggestions: suggest(name, reg.Names()),
			Searched:    r.engine.SearchedDirs(),
		}
	}
	return def, nil
}

// Execute invokes a definition with fault containment: an error or panic
// from the hook body becomes a failed Result with a diagnostic message.
// Git must always see a clean process exit, never a crash.
func (r *Runner) Execute(ctx context.Context, def hook.Definition, hc hook.Context) (result hook.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			log.FromContext(ctx).Debugf("hook %s panicked: %v", def.Name(), rec)
			result = hook.Failed(fmt.Sprintf("unexpected error in hook %s: %v", def.Name(), rec)).Normalize()
		}
	}()

	res, err := def.Execute(ctx, hc)
	if err != nil {
		return hook.Failed(fmt.Sprintf("unexpected error in hook %s: %v", def.Name(), err)).Normalize()
	}
	return res.Normalize()
}

// report emits the result message: success to stdout, failure to stderr.
// This is the only place hook result text reaches the user.
func (r *Runner) report(ctx context.Context, result hook.Result) {
	if result.Message == "" {
		return
	}
	if result.Success {
		output.FromContext(ctx).Println(result.Message)
	} else {
		fmt.Fprintln(log.FromContext(ctx).Writer(), result.Message)
	}
}

// suggest returns up to three close matches for an unknown hook name.
func suggest(name string, names []string) []string {
	matches := fuzzy.Find(name, names)
	var suggestions []string
	for i := 0; i < len(matches) && i < 3; i++ {
		suggestions = append(suggestions, matches[i].Str)
	}
	return suggestions
}
