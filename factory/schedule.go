/*
Package factory provides JSON to Go loan configuration conversion.

PURPOSE:
  Converts JSON loan definitions into schedule.LoanTerms and
  schedule.ExtraRules. This enables schedule configuration without code
  changes - callers (HTTP API, saved scenarios) describe loans in JSON and
  the factory builds the proper Go structs.

JSON SCHEMA:
  {
    "principal": 100000,
    "rate": 0.05,
    "periods": 360,
    "extra_at":    {"3": 500},
    "extra_every": {"6": 1000}
  }

  The recognized options are exactly principal (loan amount), rate (annual
  interest fraction), periods (term length in periods), extra_at (one-time
  extra-payment map), and extra_every (recurring extra-payment map).

  JSON object keys are strings, so the extra maps are string-keyed here
  and converted to integer period numbers during build.

KEY FEATURES:
  - No defaults for the three core values: a missing or zero principal,
    rate, or periods is a caller error, never silently defaulted
  - Validates extra-payment keys and amounts
  - Round-trips back to JSON for scenario listings

USAGE:
  f := factory.NewScheduleFactory()
  terms, rules, err := f.Parse(jsonString)
  eng, err := schedule.New(terms, rules)

SEE ALSO:
  - schedule/types.go: LoanTerms
  - schedule/extra.go: ExtraRules
  - api/handlers.go: Uses the factory for request bodies
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/warp/amortization-engine/schedule"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ScheduleJSON is the JSON representation of a loan configuration.
type ScheduleJSON struct {
	Principal  float64            `json:"principal"`
	Rate       float64            `json:"rate"`
	Periods    int                `json:"periods"`
	ExtraAt    map[string]float64 `json:"extra_at,omitempty"`
	ExtraEvery map[string]float64 `json:"extra_every,omitempty"`
}

// =============================================================================
// SCHEDULE FACTORY
// =============================================================================

// ScheduleFactory converts JSON loan configurations to Go structs.
type ScheduleFactory struct{}

// NewScheduleFactory creates a new schedule factory.
func NewScheduleFactory() *ScheduleFactory {
	return &ScheduleFactory{}
}

// Parse parses a JSON string into loan terms and extra-payment rules.
func (f *ScheduleFactory) Parse(jsonStr string) (schedule.LoanTerms, schedule.ExtraRules, error) {
	var sj ScheduleJSON
	if err := json.Unmarshal([]byte(jsonStr), &sj); err != nil {
		return schedule.LoanTerms{}, schedule.ExtraRules{}, fmt.Errorf("failed to parse schedule JSON: %w", err)
	}
	return f.FromJSON(sj)
}

// FromJSON converts ScheduleJSON to loan terms and extra-payment rules.
// The three core values are required; absence (the zero value) is a
// caller error, not a default.
func (f *ScheduleFactory) FromJSON(sj ScheduleJSON) (schedule.LoanTerms, schedule.ExtraRules, error) {
	terms := schedule.LoanTerms{
		Principal:  decimal.NewFromFloat(sj.Principal),
		AnnualRate: decimal.NewFromFloat(sj.Rate),
		Periods:    sj.Periods,
	}
	if err := terms.Validate(); err != nil {
		return schedule.LoanTerms{}, schedule.ExtraRules{}, err
	}

	rules := schedule.NewExtraRules()
	if err := fillRules(rules.At, sj.ExtraAt); err != nil {
		return schedule.LoanTerms{}, schedule.ExtraRules{}, err
	}
	if err := fillRules(rules.Every, sj.ExtraEvery); err != nil {
		return schedule.LoanTerms{}, schedule.ExtraRules{}, err
	}
	if err := rules.Validate(); err != nil {
		return schedule.LoanTerms{}, schedule.ExtraRules{}, err
	}

	return terms, rules, nil
}

// ToJSON converts loan terms and rules back to ScheduleJSON.
func (f *ScheduleFactory) ToJSON(terms schedule.LoanTerms, rules schedule.ExtraRules) ScheduleJSON {
	sj := ScheduleJSON{
		Principal: terms.Principal.InexactFloat64(),
		Rate:      terms.AnnualRate.InexactFloat64(),
		Periods:   terms.Periods,
	}
	if len(rules.At) > 0 {
		sj.ExtraAt = make(map[string]float64, len(rules.At))
		for period, amount := range rules.At {
			sj.ExtraAt[strconv.Itoa(period)] = amount.InexactFloat64()
		}
	}
	if len(rules.Every) > 0 {
		sj.ExtraEvery = make(map[string]float64, len(rules.Every))
		for period, amount := range rules.Every {
			sj.ExtraEvery[strconv.Itoa(period)] = amount.InexactFloat64()
		}
	}
	return sj
}

// fillRules converts a string-keyed JSON map into an integer-keyed rule map.
func fillRules(dst map[int]decimal.Decimal, src map[string]float64) error {
	for key, amount := range src {
		period, err := strconv.Atoi(key)
		if err != nil {
			return &schedule.RuleError{Rule: key, Err: schedule.ErrBadRuleKey}
		}
		dst[period] = decimal.NewFromFloat(amount)
	}
	return nil
}
