package cli

// Exit codes for different error types.
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitRuntime    = 2
)

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode returns the process exit code for this error.
func (e *exitError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}
