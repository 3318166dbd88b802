package hook

import (
	"context"
	"strings"

	"github.com/raphi011/grit/internal/cmd"
)

// Command is a hook definition declared in githooks.toml as a
// [hooks.NAME] table with a shell command line.
type Command struct {
	HookName    string
	CommandLine string
	Description string
}

// Name returns the declared hook name (the toml table key).
func (c Command) Name() string {
	return c.HookName
}

// Execute runs the command line through sh in the project root,
// forwarding git's stdin payload.
func (c Command) Execute(ctx context.Context, hc Context) (Result, error) {
	res, err := cmd.RunContext(ctx, hc.ProjectRoot, strings.NewReader(hc.Stdin()), "sh", "-c", c.CommandLine)
	if err != nil {
		return Result{}, err
	}
	return resultFromCommand(res), nil
}
