/*
scenarios.go - Demo scenario definitions for testing and demonstrations

PURPOSE:

	Provides pre-built loan configurations that demonstrate specific engine
	features. Scenarios are pure configurations: computing one never
	mutates anything, so they are safe in any environment.

AVAILABLE SCENARIOS:

	thirty-year-baseline: 100000 at 5% over 360 periods, no extras
	starter-home:         250000 at 6.5% over 360 periods
	zero-interest:        1200 at 0% over 12 periods (degenerate rate)
	annual-bonus:         Recurring 2500 extra every 12 periods
	lump-sum:             One-time 10000 extra at period 60

USAGE VIA API:

	GET  /api/scenarios
	POST /api/scenarios/annual-bonus/compute

ADDING NEW SCENARIOS:
 1. Add to the 'scenarios' slice with ID, name, description, config
 2. Nothing else: ComputeScenario resolves by ID

SEE ALSO:
  - handlers.go: ComputeSchedule, shared computation path
  - factory/schedule.go: ScheduleJSON configuration type
*/
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/amortization-engine/factory"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "thirty-year-baseline",
		Name:        "Thirty-Year Baseline",
		Description: "100k at 5% over 360 periods, no extra payments",
		Config:      factory.ScheduleJSON{Principal: 100000, Rate: 0.05, Periods: 360},
	},
	{
		ID:          "starter-home",
		Name:        "Starter Home",
		Description: "250k at 6.5% over 360 periods",
		Config:      factory.ScheduleJSON{Principal: 250000, Rate: 0.065, Periods: 360},
	},
	{
		ID:          "zero-interest",
		Name:        "Zero Interest",
		Description: "Degenerate 0% rate: even principal split",
		Config:      factory.ScheduleJSON{Principal: 1200, Rate: 0, Periods: 12},
	},
	{
		ID:          "annual-bonus",
		Name:        "Annual Bonus",
		Description: "2500 extra principal every 12 periods starting at period 12",
		Config: factory.ScheduleJSON{
			Principal:  100000,
			Rate:       0.05,
			Periods:    360,
			ExtraEvery: map[string]float64{"12": 2500},
		},
	},
	{
		ID:          "lump-sum",
		Name:        "Lump Sum",
		Description: "One-time 10000 extra principal at period 60",
		Config: factory.ScheduleJSON{
			Principal: 100000,
			Rate:      0.05,
			Periods:   360,
			ExtraAt:   map[string]float64{"60": 10000},
		},
	},
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns all demo scenarios with their configurations.
func (h *Handler) ListScenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// ComputeScenario computes the schedule for a scenario by ID.
func (h *Handler) ComputeScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, sc := range scenarios {
		if sc.ID != id {
			continue
		}
		resp, err := h.computeSchedule(ScheduleRequest{ScheduleJSON: sc.Config})
		if err != nil {
			writeScheduleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}
	writeError(w, http.StatusNotFound, fmt.Errorf("unknown scenario %q", id))
}
