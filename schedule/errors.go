/*
errors.go - Centralized error types for the schedule engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers (CLI, HTTP handlers) wrap these with additional context.

ERROR CATEGORIES:
  1. Terms errors - Invalid principal, rate, or period count
  2. Rule errors - Malformed extra-payment rules

USAGE:
  Front-ends classify errors for exit codes / HTTP status:

    if schedule.IsValidationError(err) {
        http.Error(w, err.Error(), http.StatusBadRequest)
    }

SEE ALSO:
  - types.go: LoanTerms.Validate uses the terms errors
  - extra.go: ParseRule and ExtraRules.Validate use the rule errors
*/
package schedule

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNonPositivePrincipal is returned when the principal is zero or
	// negative at construction.
	ErrNonPositivePrincipal = errors.New("principal must be positive")

	// ErrNegativeRate is returned when the annual rate is negative.
	// A zero rate is valid: it selects the no-interest fallback formula.
	ErrNegativeRate = errors.New("annual rate must not be negative")

	// ErrNonPositivePeriods is returned when the period count is zero or
	// negative at construction.
	ErrNonPositivePeriods = errors.New("period count must be positive")

	// ErrBadRuleKey is returned when an extra-payment rule is keyed by a
	// period number below 1.
	ErrBadRuleKey = errors.New("extra-payment period must be a positive integer")

	// ErrBadRuleAmount is returned when an extra-payment amount is zero
	// or negative.
	ErrBadRuleAmount = errors.New("extra-payment amount must be positive")

	// ErrBadRuleFormat is returned when a textual rule is not of the form
	// "period=amount".
	ErrBadRuleFormat = errors.New("extra-payment rule must be of the form period=amount")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RuleError reports which extra-payment rule failed validation or parsing.
type RuleError struct {
	Rule string // The offending rule, as written ("0=500", "6=abc", ...)
	Err  error  // One of the rule sentinels above
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("invalid extra-payment rule %q: %v", e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidationError returns true if the error is due to invalid caller
// input rather than an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNonPositivePrincipal) ||
		errors.Is(err, ErrNegativeRate) ||
		errors.Is(err, ErrNonPositivePeriods) ||
		errors.Is(err, ErrBadRuleKey) ||
		errors.Is(err, ErrBadRuleAmount) ||
		errors.Is(err, ErrBadRuleFormat)
}
