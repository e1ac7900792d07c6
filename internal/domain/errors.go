package domain

import "errors"

// Sentinel errors for benchmark and configuration failures.
// Use errors.Is() for matching - never compare error strings.
//
// Schedule and Check themselves have no error path; these sentinels exist for
// the harness and the composition root around it.
var (
	// Validation errors - terminal for a benchmark run.
	ErrFireCountMismatch = errors.New("fired event count does not match expected total")
	ErrFiringOrder       = errors.New("firing order violated clock monotonicity")

	// Configuration errors.
	ErrConfigRequired = errors.New("required configuration key missing")
	ErrBadScheduler   = errors.New("unknown scheduler backend")

	// CLI errors.
	ErrBadArgument = errors.New("invalid command-line argument")
)

// IsValidationError returns true if the error represents a benchmark
// invariant violation, as opposed to a setup or configuration problem.
// Validation errors still produce the timings report before the process
// exits non-zero; setup errors do not.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrFireCountMismatch) || errors.Is(err, ErrFiringOrder)
}
