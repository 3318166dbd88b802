package hook

import "context"

// Definition is a named, executable hook unit. Concrete variants are
// discovered script files, toml-declared commands, and Go implementations
// registered at discovery time.
//
// Execute returns a Result describing the hook's outcome. A returned error
// is an execution fault (the hook could not run to a verdict at all); the
// runner contains faults and never lets them crash the process.
type Definition interface {
	Name() string
	Execute(ctx context.Context, hc Context) (Result, error)
}

// Func adapts a plain function into a Definition. Used for hooks
// implemented in Go and registered explicitly.
type Func struct {
	HookName string
	Run      func(ctx context.Context, hc Context) (Result, error)
}

// Name returns the hook's git lifecycle event name.
func (f Func) Name() string {
	return f.HookName
}

// Execute invokes the wrapped function.
func (f Func) Execute(ctx context.Context, hc Context) (Result, error) {
	return f.Run(ctx, hc)
}
