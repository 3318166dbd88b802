package hook

import "slices"

// KnownNames is git's vocabulary of client-side lifecycle hook names.
// The framework accepts any name, but only these are ever invoked by
// git itself; install warns when a shim targets anything else.
var KnownNames = []string{
	"applypatch-msg",
	"pre-applypatch",
	"post-applypatch",
	"pre-commit",
	"pre-merge-commit",
	"prepare-commit-msg",
	"commit-msg",
	"post-commit",
	"pre-rebase",
	"post-checkout",
	"post-merge",
	"pre-push",
	"post-rewrite",
	"pre-auto-gc",
	"post-index-change",
}

// IsKnownName reports whether name is one git invokes on its own.
func IsKnownName(name string) bool {
	return slices.Contains(KnownNames, name)
}
