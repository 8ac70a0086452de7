package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hasbyte1/pwgen/generator"
	"github.com/hasbyte1/pwgen/policy"
)

// Process exit codes. Input problems and environmental failures are
// distinguished so scripts can tell a typo from a broken environment.
const (
	exitOK    = 0
	exitInput = 2
	exitEnv   = 4
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitOK)
}

// exitCode maps an error to the process exit code: caller-input problems
// (flag shape, policy violations, bypassed-validation inputs) exit with
// exitInput, everything environmental with exitEnv.
func exitCode(err error) int {
	var uerr *usageError
	if errors.As(err, &uerr) {
		return exitInput
	}
	for _, input := range []error{
		policy.ErrInvalidBounds,
		policy.ErrEmptyAllowed,
		policy.ErrForceNotSubset,
		policy.ErrMinBelowForced,
		generator.ErrInvalidInput,
	} {
		if errors.Is(err, input) {
			return exitInput
		}
	}
	return exitEnv
}
