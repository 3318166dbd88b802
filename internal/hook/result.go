package hook

// Result is the outcome a hook definition returns.
type Result struct {
	Success  bool
	Message  string
	ExitCode int
}

// OK returns a successful result with an optional message.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Failed returns a failed result with exit code 1.
func Failed(message string) Result {
	return Result{Success: false, Message: message, ExitCode: 1}
}

// Normalize reconciles the success flag and exit code: a failed result
// never reports exit code 0, and a successful one always does.
func (r Result) Normalize() Result {
	if !r.Success && r.ExitCode == 0 {
		r.ExitCode = 1
	} else if r.Success && r.ExitCode != 0 {
		r.ExitCode = 0
	}
	return r
}
