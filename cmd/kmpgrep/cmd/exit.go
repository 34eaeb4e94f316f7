package cmd

import (
	"errors"
	"fmt"
)

// exitStatus is returned by the root command to signal a specific exit code.
// grep convention: 0=found, 1=not found, 2=error.
type exitStatus struct {
	code int
	err  error
}

func (e exitStatus) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	switch e.code {
	case 0:
		return ""
	case 1:
		return "no match"
	default:
		return fmt.Sprintf("kmpgrep error (exit %d)", e.code)
	}
}

func (e exitStatus) Unwrap() error { return e.err }

// errNoMatch signals a clean run without any occurrence.
var errNoMatch = exitStatus{code: 1}

// failedInputs reports that at least one input could not be searched.
func failedInputs(errs []error) error {
	return exitStatus{code: 2, err: errors.Join(errs...)}
}

// ExitCode extracts the exit code from an exitStatus error.
// Returns -1 if err does not carry one.
func ExitCode(err error) int {
	var es exitStatus
	if errors.As(err, &es) {
		return es.code
	}
	return -1
}
