package cli

import (
	"errors"
	"fmt"

	"github.com/rshade/licensedesk/internal/api"
)

// Process exit codes.
const (
	ExitCodeFailure = 1
	// ExitCodeAuth means the backend rejected the session or none exists.
	ExitCodeAuth = 2
	// ExitCodePartial means a bulk operation finished with some failures.
	ExitCodePartial = 3
)

// ExitError carries the exit code a command wants the process to end with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code: 0 for nil, the carried code for
// an ExitError anywhere in the chain, ExitCodeFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCodeFailure
}

// withLoginHint turns authorization failures into an ExitError that tells the
// user how to recover. Other errors pass through unchanged.
func withLoginHint(err error) error {
	if err == nil || !errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	return &ExitError{
		Code: ExitCodeAuth,
		Err:  fmt.Errorf("%w (run 'licensedesk login --token <token>')", err),
	}
}
