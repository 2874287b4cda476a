/*
engine.go - The amortization stepping engine

PURPOSE:
  Generates the schedule one period at a time. The engine owns all mutable
  state (remaining balance, period counter, running totals) and exposes it
  only through returned values.

BASE PAYMENT:
  Standard level-payment amortization:

      base = P * r * (1+r)^n / ((1+r)^n - 1)

  where r is the periodic rate (annual/12) and n the period count. The
  base payment is rounded to 2 decimal places ONCE, at construction, and
  that rounded value is reused unmodified each period. Recomputing it per
  period would accumulate drift.

  Degenerate zero rate: the formula above is undefined, so the engine
  falls back to P / n with zero interest every period.

STEPPING:
  Each call to Next advances one period:
    1. interest  = round2(balance * periodicRate)
    2. principal = round2(base - interest + extra)
    3. payment   = interest + principal
    4. balance   = round2(balance - principal)
  The final period forces payment = balance and sets the balance to
  exactly zero, absorbing any rounding residue. If an extra payment would
  overshoot the balance before the final period, the principal is clamped
  to the balance and the sequence ends early.

  The sequence is finite and non-restartable: construct a fresh engine to
  iterate again.

SEE ALSO:
  - types.go: LoanTerms, PeriodResult, RunningTotals
  - extra.go: Extra-payment matching
*/
package schedule

import (
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENGINE - Explicit state advanced by Next
// =============================================================================

// Engine steps through an amortization schedule. A single instance must
// not be driven from multiple goroutines; use one engine per computation.
type Engine struct {
	terms LoanTerms
	rules ExtraRules

	rate    decimal.Decimal // periodic rate, cached at construction
	base    decimal.Decimal // level payment, rounded once
	balance decimal.Decimal
	period  int
	totals  RunningTotals
	done    bool
}

// New validates the inputs and returns an engine positioned before the
// first period. There are no defaults: principal, rate, and period count
// must all be supplied by the caller.
func New(terms LoanTerms, rules ExtraRules) (*Engine, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	rate := terms.PeriodicRate()
	return &Engine{
		terms:   terms,
		rules:   rules,
		rate:    rate,
		base:    basePayment(terms, rate),
		balance: terms.Principal,
	}, nil
}

// basePayment computes the level payment, rounded to 2 decimal places.
// The power term is evaluated in float64; its ~15 significant digits are
// ample for a value that is immediately rounded to cents.
func basePayment(terms LoanTerms, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return round2(terms.Principal.Div(decimal.NewFromInt(int64(terms.Periods))))
	}

	r := rate.InexactFloat64()
	factor := math.Pow(1+r, float64(terms.Periods))
	payment := terms.Principal.InexactFloat64() * r * factor / (factor - 1)
	return round2(decimal.NewFromFloat(payment))
}

// BasePayment returns the scheduled level payment.
func (e *Engine) BasePayment() decimal.Decimal {
	return e.base
}

// Remaining returns the balance still owed as of the last completed step.
func (e *Engine) Remaining() decimal.Decimal {
	return e.balance
}

// Totals returns the running totals as of the last completed step. Valid
// at any point during or after iteration.
func (e *Engine) Totals() RunningTotals {
	return e.totals
}

// Next advances one period and returns its result. The second return
// value is false once the schedule is exhausted: either the balance
// reached zero or the period count was consumed. Once false, it stays
// false.
func (e *Engine) Next() (PeriodResult, bool) {
	if e.done || e.period >= e.terms.Periods || !e.balance.IsPositive() {
		e.done = true
		return PeriodResult{}, false
	}

	e.period++
	p := e.period

	interest := round2(e.balance.Mul(e.rate))
	extra := e.rules.AmountFor(p)
	principal := round2(e.base.Sub(interest).Add(extra))
	var payment, balance decimal.Decimal

	switch {
	case p == e.terms.Periods:
		// Final period: the payment clears the balance exactly,
		// absorbing any rounding residue.
		payment = e.balance
		principal = payment.Sub(interest)
		balance = decimal.Zero
		e.done = true

	case principal.GreaterThanOrEqual(e.balance):
		// Extra payments retire the loan ahead of schedule.
		principal = e.balance
		payment = interest.Add(principal)
		balance = decimal.Zero
		e.done = true

	default:
		payment = interest.Add(principal)
		balance = round2(e.balance.Sub(principal))
	}

	e.balance = balance
	res := PeriodResult{
		Period:      p,
		BasePayment: e.base,
		Interest:    interest,
		Principal:   principal,
		Payment:     payment,
		Balance:     balance,
	}
	e.totals = e.totals.Add(res)
	return res, true
}

// Run drains the engine and returns every remaining period. Convenience
// for callers that want the whole schedule at once.
func (e *Engine) Run() []PeriodResult {
	results := make([]PeriodResult, 0, e.terms.Periods-e.period)
	for {
		res, ok := e.Next()
		if !ok {
			return results
		}
		results = append(results, res)
	}
}
