package schedule_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/amortization-engine/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func d(s string) decimal.Decimal {
	return schedule.MustParseDecimal(s)
}

func terms(principal, rate string, periods int) schedule.LoanTerms {
	return schedule.LoanTerms{
		Principal:  d(principal),
		AnnualRate: d(rate),
		Periods:    periods,
	}
}

func newEngine(t *testing.T, lt schedule.LoanTerms, rules schedule.ExtraRules) *schedule.Engine {
	t.Helper()
	eng, err := schedule.New(lt, rules)
	require.NoError(t, err)
	return eng
}

// assertCents fails unless the actual amount equals the expected one to
// the cent.
func assertCents(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if d(expected).Equal(actual) {
		return
	}
	if len(msgAndArgs) > 0 {
		t.Errorf("%s: got %s, want %s", fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...), actual, expected)
		return
	}
	t.Errorf("got %s, want %s", actual, expected)
}

// =============================================================================
// BASELINE SCHEDULE (100000 @ 5% x 360)
// =============================================================================

func TestEngine_ThirtyYearBaseline_FirstPeriod(t *testing.T) {
	// GIVEN: 100000 principal, 5% annual, 360 monthly periods
	// WHEN: Advancing one period
	// THEN: Base payment 536.82, interest 416.67, principal 120.15

	eng := newEngine(t, terms("100000", "0.05", 360), schedule.NewExtraRules())
	assertCents(t, "536.82", eng.BasePayment())

	res, ok := eng.Next()
	require.True(t, ok)
	assert.Equal(t, 1, res.Period)
	assertCents(t, "416.67", res.Interest)
	assertCents(t, "120.15", res.Principal)
	assertCents(t, "536.82", res.Payment)
	assertCents(t, "99879.85", res.Balance)
}

func TestEngine_ThirtyYearBaseline_FullSchedule(t *testing.T) {
	// GIVEN: The same 30-year loan
	// WHEN: Draining the whole schedule
	// THEN: Exactly 360 periods, final balance exactly zero, and the
	//       principal portions sum back to the loan amount within the
	//       rounding tolerance of one cent per period

	lt := terms("100000", "0.05", 360)
	eng := newEngine(t, lt, schedule.NewExtraRules())
	results := eng.Run()

	require.Len(t, results, 360)

	last := results[len(results)-1]
	assert.True(t, last.Balance.IsZero(), "final balance must be exactly zero, got %s", last.Balance)
	assert.True(t, last.Payment.Equal(last.Interest.Add(last.Principal)),
		"final payment must equal interest + principal")

	sum := decimal.Zero
	for _, res := range results {
		sum = sum.Add(res.Principal)
	}
	tolerance := d("0.01").Mul(decimal.NewFromInt(360))
	assert.True(t, sum.Sub(lt.Principal).Abs().LessThanOrEqual(tolerance),
		"principal portions sum to %s, want %s +/- %s", sum, lt.Principal, tolerance)
}

// =============================================================================
// PER-PERIOD INVARIANTS
// =============================================================================

func TestEngine_PaymentSplitsIntoInterestAndPrincipal(t *testing.T) {
	// GIVEN: A loan with recurring and one-time extras
	// WHEN: Draining the schedule
	// THEN: payment == interest + principal for every period

	rules := schedule.NewExtraRules()
	rules.AddEvery(6, d("1000"))
	rules.AddAt(3, d("500.25"))

	eng := newEngine(t, terms("50000", "0.07", 120), rules)
	for _, res := range eng.Run() {
		assert.True(t, res.Payment.Equal(res.Interest.Add(res.Principal)),
			"period %d: payment %s != interest %s + principal %s",
			res.Period, res.Payment, res.Interest, res.Principal)
	}
}

func TestEngine_InterestAccruesOnPriorBalance(t *testing.T) {
	// GIVEN: Any schedule
	// WHEN: Recomputing interest from the previous balance independently
	// THEN: interest_i == round(balance_{i-1} * rate/12, 2), starting
	//       from balance_0 == principal

	lt := terms("100000", "0.05", 360)
	eng := newEngine(t, lt, schedule.NewExtraRules())

	prev := lt.Principal
	rate := lt.PeriodicRate()
	for _, res := range eng.Run() {
		expected := prev.Mul(rate).Round(2)
		assert.True(t, expected.Equal(res.Interest),
			"period %d: interest %s, want %s", res.Period, res.Interest, expected)
		prev = res.Balance
	}
}

func TestEngine_RunningTotalsMatchEmittedPeriods(t *testing.T) {
	// GIVEN: A stepping engine
	// WHEN: Checking totals after each step
	// THEN: Totals equal the sums of the periods emitted so far

	eng := newEngine(t, terms("25000", "0.04", 60), schedule.NewExtraRules())

	var payment, principal, interest decimal.Decimal
	for {
		res, ok := eng.Next()
		if !ok {
			break
		}
		payment = payment.Add(res.Payment)
		principal = principal.Add(res.Principal)
		interest = interest.Add(res.Interest)

		totals := eng.Totals()
		assert.True(t, totals.Payment.Equal(payment), "period %d payment total", res.Period)
		assert.True(t, totals.Principal.Equal(principal), "period %d principal total", res.Period)
		assert.True(t, totals.Interest.Equal(interest), "period %d interest total", res.Period)
	}
}

// =============================================================================
// DEGENERATE ZERO RATE
// =============================================================================

func TestEngine_ZeroRate_EvenSplit(t *testing.T) {
	// GIVEN: 1200 at 0% over 12 periods
	// WHEN: Draining the schedule
	// THEN: Every period pays 100.00 with zero interest; final balance 0

	eng := newEngine(t, terms("1200", "0", 12), schedule.NewExtraRules())
	assertCents(t, "100.00", eng.BasePayment())

	results := eng.Run()
	require.Len(t, results, 12)
	for _, res := range results {
		assertCents(t, "100.00", res.Payment, "period %d payment", res.Period)
		assertCents(t, "100.00", res.Principal, "period %d principal", res.Period)
		assert.True(t, res.Interest.IsZero(), "period %d interest", res.Period)
	}
	assert.True(t, results[11].Balance.IsZero())
}

// =============================================================================
// EXTRA PAYMENTS
// =============================================================================

func TestEngine_RecurringExtra_AnnualCadence(t *testing.T) {
	// GIVEN: 100000 @ 5% x 24 with a recurring 1000 extra starting at
	//        period 6 (annual cadence: periods 6 and 18 within the term)
	// WHEN: Draining the schedule
	// THEN: Matched periods carry exactly 1000 extra principal on top of
	//       the base split; unmatched periods carry none

	rules := schedule.NewExtraRules()
	rules.AddEvery(6, d("1000"))

	eng := newEngine(t, terms("100000", "0.05", 24), rules)
	base := eng.BasePayment()

	for _, res := range eng.Run() {
		expected := base.Sub(res.Interest)
		switch res.Period {
		case 6, 18:
			expected = expected.Add(d("1000"))
		}
		if res.Balance.IsZero() {
			continue // payoff period absorbs the residue
		}
		assert.True(t, expected.Equal(res.Principal),
			"period %d: principal %s, want %s", res.Period, res.Principal, expected)
	}
}

func TestEngine_OverpayingExtra_TerminatesEarly(t *testing.T) {
	// GIVEN: A 24-period loan with oversized recurring extras
	// WHEN: Draining the schedule
	// THEN: The schedule ends strictly before period 24 with a zero
	//       balance and a clamped final payment

	rules := schedule.NewExtraRules()
	rules.AddEvery(6, d("50000"))

	eng := newEngine(t, terms("100000", "0.05", 24), rules)
	results := eng.Run()

	require.NotEmpty(t, results)
	assert.Less(t, len(results), 24)

	last := results[len(results)-1]
	assert.True(t, last.Balance.IsZero())
	assert.True(t, last.Payment.Equal(last.Interest.Add(last.Principal)))

	// Balance stays positive until the very last emitted period.
	for _, res := range results[:len(results)-1] {
		assert.True(t, res.Balance.IsPositive(), "period %d", res.Period)
	}
}

func TestEngine_OneTimeExtra_AppliedIndependently(t *testing.T) {
	// GIVEN: A one-time extra at a period with no recurring rule
	// WHEN: Stepping past it
	// THEN: The extra is applied at exactly that period

	rules := schedule.NewExtraRules()
	rules.AddAt(3, d("500"))

	eng := newEngine(t, terms("100000", "0.05", 360), rules)
	base := eng.BasePayment()

	results := eng.Run()
	third := results[2]
	assert.Equal(t, 3, third.Period)
	expected := base.Sub(third.Interest).Add(d("500"))
	assert.True(t, expected.Equal(third.Principal),
		"principal %s, want %s", third.Principal, expected)

	// Neighbors are unaffected.
	for _, res := range []schedule.PeriodResult{results[1], results[3]} {
		expected := base.Sub(res.Interest)
		assert.True(t, expected.Equal(res.Principal), "period %d", res.Period)
	}
}

// =============================================================================
// SEQUENCE BEHAVIOR
// =============================================================================

func TestEngine_Exhausted_StaysExhausted(t *testing.T) {
	// GIVEN: A fully drained engine
	// WHEN: Calling Next again
	// THEN: It keeps returning ok=false; a fresh engine is required

	eng := newEngine(t, terms("1200", "0", 12), schedule.NewExtraRules())
	eng.Run()

	for i := 0; i < 3; i++ {
		_, ok := eng.Next()
		assert.False(t, ok)
	}
	assert.True(t, eng.Remaining().IsZero())
}

func TestEngine_NeverExceedsConfiguredPeriods(t *testing.T) {
	// GIVEN: Loans with and without extras
	// WHEN: Draining
	// THEN: Emitted length never exceeds the configured period count

	for _, tc := range []struct {
		name  string
		rules func() schedule.ExtraRules
	}{
		{"no extras", schedule.NewExtraRules},
		{"heavy extras", func() schedule.ExtraRules {
			r := schedule.NewExtraRules()
			r.AddEvery(1, d("10000"))
			return r
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			eng := newEngine(t, terms("100000", "0.05", 36), tc.rules())
			assert.LessOrEqual(t, len(eng.Run()), 36)
		})
	}
}

// =============================================================================
// CONSTRUCTION VALIDATION
// =============================================================================

func TestNew_RejectsInvalidTerms(t *testing.T) {
	cases := []struct {
		name string
		lt   schedule.LoanTerms
		want error
	}{
		{"zero principal", terms("0", "0.05", 12), schedule.ErrNonPositivePrincipal},
		{"negative principal", terms("-100", "0.05", 12), schedule.ErrNonPositivePrincipal},
		{"negative rate", terms("1000", "-0.01", 12), schedule.ErrNegativeRate},
		{"zero periods", terms("1000", "0.05", 0), schedule.ErrNonPositivePeriods},
		{"negative periods", terms("1000", "0.05", -3), schedule.ErrNonPositivePeriods},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schedule.New(tc.lt, schedule.NewExtraRules())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, schedule.IsValidationError(err))
		})
	}
}

func TestNew_RejectsInvalidRules(t *testing.T) {
	// GIVEN: Rules with a non-positive key or amount
	// THEN: Construction fails with a classified validation error

	bad := schedule.NewExtraRules()
	bad.AddAt(0, d("100"))
	_, err := schedule.New(terms("1000", "0.05", 12), bad)
	assert.ErrorIs(t, err, schedule.ErrBadRuleKey)

	bad = schedule.NewExtraRules()
	bad.AddEvery(6, d("0"))
	_, err = schedule.New(terms("1000", "0.05", 12), bad)
	assert.ErrorIs(t, err, schedule.ErrBadRuleAmount)
}
