package cli

import "fmt"

// ExitError represents a command failure with a specific exit code.
//
// Cobra RunE functions return an ExitError instead of calling os.Exit()
// directly, so the exit code propagates up to [RunWithConfig] where
// [IsExitError] extracts it into the [ExecuteResult]. Tests can then assert
// on exit codes without the process terminating.
type ExitError struct {
	// Code is the exit code to return to the shell.
	// Convention: 0 = success, 1 = general error.
	Code int
}

// Error implements the error interface in the "exit status N" format used
// by os/exec, for consistency with subprocess failure messages.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError checks whether an error is an [ExitError] and extracts its
// exit code. Returns (0, false) for nil or other error types.
func IsExitError(err error) (int, bool) {
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code, true
	}
	return 0, false
}
