/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-based model from the external API contract: all
  monetary values are rendered as 2-decimal strings so clients never see
  float artifacts.

NAMING CONVENTION:
  - *Request:  Request body types from clients
  - *Response: Response wrappers returned to clients
  - *DTO:      Row/item types nested inside responses

SEE ALSO:
  - handlers.go: Uses these types
  - factory/schedule.go: ScheduleJSON configuration type
*/
package api

import (
	"github.com/warp/amortization-engine/factory"
	"github.com/warp/amortization-engine/schedule"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ScheduleRequest is the request to compute a schedule. It embeds the
// recognized loan configuration options and adds optional date labeling.
type ScheduleRequest struct {
	factory.ScheduleJSON

	// StartMonth/StartYear label the first period's date column.
	// Both optional; rows carry no dates when absent.
	StartMonth int `json:"start_month,omitempty"`
	StartYear  int `json:"start_year,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// PeriodRowDTO is one row of a schedule in API responses.
type PeriodRowDTO struct {
	Period    int    `json:"period"`
	Date      string `json:"date,omitempty"`
	Payment   string `json:"payment"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Balance   string `json:"balance"`
}

// TotalsDTO carries the running totals of an emitted schedule.
type TotalsDTO struct {
	Payment   string `json:"payment"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
}

// ScheduleResponse is the full schedule.
type ScheduleResponse struct {
	BasePayment string         `json:"base_payment"`
	Periods     int            `json:"periods"`
	Rows        []PeriodRowDTO `json:"rows"`
	Totals      TotalsDTO      `json:"totals"`
}

// SummaryResponse is the schedule without per-period rows.
type SummaryResponse struct {
	BasePayment string    `json:"base_payment"`
	Periods     int       `json:"periods"`
	PayoffDate  string    `json:"payoff_date,omitempty"`
	Totals      TotalsDTO `json:"totals"`
}

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Config      factory.ScheduleJSON `json:"config"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// newTotalsDTO converts engine totals to their wire form.
func newTotalsDTO(totals schedule.RunningTotals) TotalsDTO {
	return TotalsDTO{
		Payment:   totals.Payment.StringFixed(2),
		Principal: totals.Principal.StringFixed(2),
		Interest:  totals.Interest.StringFixed(2),
	}
}
