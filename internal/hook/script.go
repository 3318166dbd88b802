package hook

import (
	"context"
	"os"
	"strings"

	"github.com/raphi011/grit/internal/cmd"
)

// Script is a hook definition backed by a file discovered under a search
// path. The file is executed with the project root as working directory,
// with git's arguments and stdin payload forwarded unchanged.
type Script struct {
	HookName string
	// Path is the absolute path of the script file.
	Path string
}

// Name returns the hook name derived from the script's file name.
func (s Script) Name() string {
	return s.HookName
}

// Execute runs the script. Executable files run directly; everything else
// goes through sh so that plain script files work without a chmod.
func (s Script) Execute(ctx context.Context, hc Context) (Result, error) {
	name, args := s.Path, hc.Args
	if !isExecutable(s.Path) {
		name, args = "sh", append([]string{s.Path}, hc.Args...)
	}

	res, err := cmd.RunContext(ctx, hc.ProjectRoot, strings.NewReader(hc.Stdin()), name, args...)
	if err != nil {
		return Result{}, err
	}
	return resultFromCommand(res), nil
}

// resultFromCommand maps a child process outcome onto a hook Result.
// On failure the child's stderr (or stdout as fallback) becomes the message.
func resultFromCommand(res cmd.Result) Result {
	if res.Success() {
		return Result{Success: true, Message: strings.TrimRight(res.Stdout, "\n")}
	}
	message := strings.TrimRight(res.Stderr, "\n")
	if message == "" {
		message = strings.TrimRight(res.Stdout, "\n")
	}
	return Result{Success: false, Message: message, ExitCode: res.ExitCode}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
