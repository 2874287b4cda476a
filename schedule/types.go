/*
Package schedule provides the core loan amortization engine.

PURPOSE:
  This package contains the types and algorithm for computing a loan
  amortization schedule: given principal, annual rate, and period count,
  it produces per-period payment, interest/principal split, and remaining
  balance, optionally modified by one-time or recurring extra principal
  payments.

KEY CONCEPTS IN THIS FILE (types.go):
  - LoanTerms: Immutable loan parameters (principal, rate, period count)
  - PeriodResult: An immutable row of the schedule, produced once per period
  - RunningTotals: Cumulative payment/principal/interest across emitted rows

DESIGN PRINCIPLES:
  1. Immutability: LoanTerms never change after the schedule starts;
     PeriodResult values are never modified after emission
  2. Precision: Uses decimal.Decimal to avoid floating-point errors in
     monetary arithmetic; everything rounds to 2 decimal places
  3. Explicit state: All mutable state lives inside Engine; callers only
     see returned values

USAGE:
  terms := schedule.LoanTerms{
      Principal:  decimal.NewFromInt(100000),
      AnnualRate: decimal.NewFromFloat(0.05),
      Periods:    360,
  }
  eng, err := schedule.New(terms, schedule.NewExtraRules())
  for {
      res, ok := eng.Next()
      if !ok {
          break
      }
      fmt.Println(res.Period, res.Payment, res.Balance)
  }

SEE ALSO:
  - engine.go: The stepping operation and base-payment formula
  - extra.go: Extra-payment rules and matching policy
  - errors.go: Validation errors
*/
package schedule

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// LOAN TERMS - Immutable loan parameters
// =============================================================================

// LoanTerms describes the loan being amortized. All three fields are
// required; there are no defaults.
type LoanTerms struct {
	// Principal is the initial loan amount. Must be positive.
	Principal decimal.Decimal

	// AnnualRate is the yearly interest rate as a decimal fraction
	// (0.05 means 5%). Must not be negative. Zero is the degenerate
	// no-interest case, handled by the fallback payment formula.
	AnnualRate decimal.Decimal

	// Periods is the term length in monthly periods. Must be positive.
	Periods int
}

// PeriodicRate returns the per-period interest rate (annual rate / 12).
func (t LoanTerms) PeriodicRate() decimal.Decimal {
	return t.AnnualRate.Div(twelve)
}

// Validate checks the terms for construction-time errors.
func (t LoanTerms) Validate() error {
	if !t.Principal.IsPositive() {
		return ErrNonPositivePrincipal
	}
	if t.AnnualRate.IsNegative() {
		return ErrNegativeRate
	}
	if t.Periods <= 0 {
		return ErrNonPositivePeriods
	}
	return nil
}

// =============================================================================
// PERIOD RESULT - One emitted row of the schedule
// =============================================================================

// PeriodResult is the outcome of a single period. It is immutable after
// emission; the engine never hands out references to internal state.
type PeriodResult struct {
	// Period is the 1-based period index.
	Period int

	// BasePayment is the scheduled level payment, identical for every
	// period except the last.
	BasePayment decimal.Decimal

	// Interest is the interest portion for this period.
	Interest decimal.Decimal

	// Principal is the principal portion, including any extra payment.
	Principal decimal.Decimal

	// Payment is the total paid this period (interest + principal).
	Payment decimal.Decimal

	// Balance is the remaining balance after this period.
	Balance decimal.Decimal
}

// =============================================================================
// RUNNING TOTALS - Cumulative sums across emitted periods
// =============================================================================

// RunningTotals accumulates payment, principal, and interest across all
// periods emitted so far. Fields are monotonically non-decreasing.
type RunningTotals struct {
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
}

// Add returns totals with one period's contribution applied.
func (rt RunningTotals) Add(res PeriodResult) RunningTotals {
	return RunningTotals{
		Payment:   rt.Payment.Add(res.Payment),
		Principal: rt.Principal.Add(res.Principal),
		Interest:  rt.Interest.Add(res.Interest),
	}
}

// =============================================================================
// DECIMAL HELPERS
// =============================================================================

var twelve = decimal.NewFromInt(12)

// round2 applies the engine's uniform monetary rounding policy.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MustParseDecimal parses a decimal string, returning zero on failure.
// Intended for literals in configuration and tests.
func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
