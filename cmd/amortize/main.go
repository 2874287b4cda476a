/*
main.go - CLI front-end for the amortization engine

PURPOSE:
  Parses loan options from flags, drives the stepping loop, and prints
  the schedule as a bordered table with a totals row.

COMMAND-LINE FLAGS:
  --principal   Loan amount (required)
  --interest    Annual interest rate as a decimal fraction, e.g. 0.05 (required)
  --periods     Term length in monthly periods (required)
  --extraat     One-time extra principal payment as period=amount (repeatable)
  --extraevery  Recurring extra principal payment as period=amount,
                applied every 12 periods from that period (repeatable)
  --month       Month of the first payment, 1-12 (default: current month)
  --year        Year of the first payment (default: current year)
  --help        Usage

  A zero principal, interest, or period count is treated as "not
  provided" and aborts with usage before the engine is constructed.

EXAMPLES:
  # Plain thirty-year loan
  amortize --principal 100000 --interest 0.05 --periods 360

  # 1000 extra every December, starting January 2026
  amortize --principal 100000 --interest 0.05 --periods 360 \
      --extraevery 12=1000 --month 1 --year 2026

SEE ALSO:
  - schedule/engine.go: The stepping engine
  - render/table.go: Table formatting
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/amortization-engine/render"
	"github.com/warp/amortization-engine/schedule"
)

// ruleFlag collects repeatable period=amount flags into a rule map.
type ruleFlag struct {
	rules map[int]decimal.Decimal
}

func newRuleFlag() *ruleFlag {
	return &ruleFlag{rules: make(map[int]decimal.Decimal)}
}

func (f *ruleFlag) String() string {
	return fmt.Sprintf("%d rules", len(f.rules))
}

func (f *ruleFlag) Set(s string) error {
	period, amount, err := schedule.ParseRule(s)
	if err != nil {
		return err
	}
	f.rules[period] = amount
	return nil
}

func main() {
	now := time.Now()

	// Flags
	principalStr := flag.String("principal", "0", "loan amount")
	interestStr := flag.String("interest", "0", "annual interest rate as a decimal fraction (e.g. 0.05)")
	periods := flag.Int("periods", 0, "term length in monthly periods")
	month := flag.Int("month", int(now.Month()), "month of the first payment (1-12)")
	year := flag.Int("year", now.Year(), "year of the first payment")
	extraAt := newRuleFlag()
	flag.Var(extraAt, "extraat", "one-time extra payment as period=amount (repeatable)")
	extraEvery := newRuleFlag()
	flag.Var(extraEvery, "extraevery", "recurring extra payment as period=amount, every 12 periods (repeatable)")
	flag.Parse()

	principal, err := decimal.NewFromString(*principalStr)
	if err != nil {
		fail("invalid --principal %q", *principalStr)
	}
	interest, err := decimal.NewFromString(*interestStr)
	if err != nil {
		fail("invalid --interest %q", *interestStr)
	}

	// Zero means "not provided" here; the engine itself accepts a zero
	// rate, but the CLI requires all three core values.
	if !principal.IsPositive() {
		fail("--principal is required")
	}
	if !interest.IsPositive() {
		fail("--interest is required")
	}
	if *periods <= 0 {
		fail("--periods is required")
	}
	if *month < 1 || *month > 12 {
		fail("--month must be between 1 and 12")
	}

	rules := schedule.ExtraRules{At: extraAt.rules, Every: extraEvery.rules}
	eng, err := schedule.New(schedule.LoanTerms{
		Principal:  principal,
		AnnualRate: interest,
		Periods:    *periods,
	}, rules)
	if err != nil {
		fail("%v", err)
	}

	// Header
	ratePercent := interest.Mul(decimal.NewFromInt(100))
	fmt.Printf("Loan of %s at %s%% over %d periods\n",
		principal.StringFixed(2), ratePercent.String(), *periods)
	fmt.Printf("Base payment: %s\n\n", eng.BasePayment().StringFixed(2))

	// Stepping loop
	table := render.NewTable(os.Stdout, time.Month(*month), *year)
	for {
		res, ok := eng.Next()
		if !ok {
			break
		}
		table.Append(res)
	}
	if err := table.Flush(eng.Totals()); err != nil {
		fail("failed to write table: %v", err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "amortize: "+format+"\n\n", args...)
	flag.Usage()
	os.Exit(2)
}
