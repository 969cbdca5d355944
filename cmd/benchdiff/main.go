package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Comparison finished, no gating regression
	ExitRegression = 1 // --fail-on-regression and at least one BAD result
	ExitError      = 2 // Configuration, input or runtime error
)

// RegressionError indicates that the comparison ran to completion but found
// regressions while regression gating was enabled.
type RegressionError struct {
	Count int
}

func (e *RegressionError) Error() string {
	if e.Count == 1 {
		return "1 regression detected"
	}
	return fmt.Sprintf("%d regressions detected", e.Count)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var regressionErr *RegressionError
		if errors.As(err, &regressionErr) {
			os.Exit(ExitRegression)
		}

		os.Exit(ExitError)
	}
}
