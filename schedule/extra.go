/*
extra.go - Extra principal payment rules

PURPOSE:
  Defines the two kinds of extra-payment rules and the policy for matching
  them against a period index:

  - At:    a one-time extra principal amount at exactly that period
  - Every: a recurring extra principal amount at that period and every
           12-period multiple after it (annual cadence)

MATCHING POLICY:
  Period P matches an Every rule keyed K iff P >= K and (P - K) % 12 == 0.
  The amount for a period is the sum of all matching Every amounts, plus
  the At amount for that exact period. When the same period index is keyed
  in BOTH maps, the recurring amount wins and the one-time amount is
  skipped. One-time rules are otherwise evaluated independently of the
  recurring keys.

EXAMPLE:
  rules := schedule.NewExtraRules()
  rules.AddEvery(6, decimal.NewFromInt(1000))  // periods 6, 18, 30, ...
  rules.AddAt(3, decimal.NewFromInt(500))      // period 3 only

SEE ALSO:
  - engine.go: Applies AmountFor during stepping
  - errors.go: Rule validation errors
*/
package schedule

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// EXTRA RULES - Typed mappings from period number to amount
// =============================================================================

// ExtraRules holds optional extra principal payments keyed by period
// number. Both maps may be empty. Rules are fixed before iteration begins
// and never mutated during it.
type ExtraRules struct {
	// At maps a period number to a one-time extra principal amount
	// applied exactly at that period.
	At map[int]decimal.Decimal

	// Every maps a period number to a recurring extra principal amount
	// applied at that period and every 12 periods thereafter.
	Every map[int]decimal.Decimal
}

// NewExtraRules returns empty rules with both maps initialized.
func NewExtraRules() ExtraRules {
	return ExtraRules{
		At:    make(map[int]decimal.Decimal),
		Every: make(map[int]decimal.Decimal),
	}
}

// AddAt registers a one-time extra payment at the given period.
func (r ExtraRules) AddAt(period int, amount decimal.Decimal) {
	r.At[period] = amount
}

// AddEvery registers a recurring extra payment starting at the given period.
func (r ExtraRules) AddEvery(period int, amount decimal.Decimal) {
	r.Every[period] = amount
}

// IsEmpty returns true when no rules are registered.
func (r ExtraRules) IsEmpty() bool {
	return len(r.At) == 0 && len(r.Every) == 0
}

// Validate checks all rule keys and amounts.
func (r ExtraRules) Validate() error {
	for _, m := range []map[int]decimal.Decimal{r.At, r.Every} {
		for period, amount := range m {
			if period < 1 {
				return ErrBadRuleKey
			}
			if !amount.IsPositive() {
				return ErrBadRuleAmount
			}
		}
	}
	return nil
}

// AmountFor returns the total extra principal to apply at the given
// period: the sum of every matching recurring amount, plus the one-time
// amount for that exact period. When the period index is itself a
// recurring key, the recurring amount takes priority and the one-time
// amount is not applied.
func (r ExtraRules) AmountFor(period int) decimal.Decimal {
	extra := decimal.Zero
	for key, amount := range r.Every {
		if period >= key && (period-key)%12 == 0 {
			extra = extra.Add(amount)
		}
	}
	if _, recurring := r.Every[period]; !recurring {
		if amount, ok := r.At[period]; ok {
			extra = extra.Add(amount)
		}
	}
	return extra
}

// =============================================================================
// RULE PARSING - "period=amount" as accepted by the CLI flags
// =============================================================================

// ParseRule parses a textual rule of the form "period=amount", e.g.
// "6=1000" or "12=250.50".
func ParseRule(s string) (int, decimal.Decimal, error) {
	left, right, ok := strings.Cut(s, "=")
	if !ok {
		return 0, decimal.Zero, &RuleError{Rule: s, Err: ErrBadRuleFormat}
	}

	period, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, decimal.Zero, &RuleError{Rule: s, Err: ErrBadRuleFormat}
	}
	if period < 1 {
		return 0, decimal.Zero, &RuleError{Rule: s, Err: ErrBadRuleKey}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(right))
	if err != nil {
		return 0, decimal.Zero, &RuleError{Rule: s, Err: ErrBadRuleFormat}
	}
	if !amount.IsPositive() {
		return 0, decimal.Zero, &RuleError{Rule: s, Err: ErrBadRuleAmount}
	}

	return period, amount, nil
}
