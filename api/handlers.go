/*
handlers.go - HTTP API handlers for the amortization engine

PURPOSE:
  Exposes the schedule engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates the arithmetic to the schedule package.

ENDPOINTS:
  Schedules:
    POST   /api/schedules              Compute a full schedule
    POST   /api/schedules/summary      Compute totals only

  Scenarios:
    GET    /api/scenarios              List demo scenarios
    POST   /api/scenarios/{id}/compute Compute a demo scenario

  Health:
    GET    /api/health                 Liveness check

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Factory: JSON configuration to engine inputs
  - Cache:   Result cache (Redis or in-memory)

  A fresh engine is constructed per request; the engine has no internal
  locking, so it is never shared between requests.

REQUEST FLOW:
  1. Parse HTTP request
  2. Check cache (schedules are pure functions of their configuration)
  3. Build engine via factory, drain it
  4. Serialize response, populate cache
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown scenario
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario definitions
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/warp/amortization-engine/factory"
	"github.com/warp/amortization-engine/schedule"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Factory *factory.ScheduleFactory
	Cache   Cache
}

// NewHandler creates a new handler backed by the given result cache.
func NewHandler(cache Cache) *Handler {
	return &Handler{
		Factory: factory.NewScheduleFactory(),
		Cache:   cache,
	}
}

// =============================================================================
// SCHEDULE HANDLERS
// =============================================================================

// ComputeSchedule computes and returns a full amortization schedule.
func (h *Handler) ComputeSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	key := cacheKey("schedule", req)
	if cached, ok := h.Cache.Get(r.Context(), key); ok {
		writeCached(w, cached)
		return
	}

	resp, err := h.computeSchedule(req)
	if err != nil {
		writeScheduleError(w, err)
		return
	}
	h.writeAndCache(w, r, key, resp)
}

// ComputeSummary computes a schedule and returns only its totals.
func (h *Handler) ComputeSummary(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	key := cacheKey("summary", req)
	if cached, ok := h.Cache.Get(r.Context(), key); ok {
		writeCached(w, cached)
		return
	}

	full, err := h.computeSchedule(req)
	if err != nil {
		writeScheduleError(w, err)
		return
	}

	resp := SummaryResponse{
		BasePayment: full.BasePayment,
		Periods:     full.Periods,
		Totals:      full.Totals,
	}
	if len(full.Rows) > 0 {
		resp.PayoffDate = full.Rows[len(full.Rows)-1].Date
	}
	h.writeAndCache(w, r, key, resp)
}

// Health is a liveness check.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errBadStartDate is a request-level validation error; date labeling is
// an API concern, not an engine one.
var errBadStartDate = errors.New("start_month must be between 1 and 12")

// computeSchedule runs the engine for one request.
func (h *Handler) computeSchedule(req ScheduleRequest) (*ScheduleResponse, error) {
	if req.StartMonth < 0 || req.StartMonth > 12 {
		return nil, errBadStartDate
	}

	terms, rules, err := h.Factory.FromJSON(req.ScheduleJSON)
	if err != nil {
		return nil, err
	}
	eng, err := schedule.New(terms, rules)
	if err != nil {
		return nil, err
	}

	labelDates := req.StartMonth >= 1 && req.StartYear > 0
	var start time.Time
	if labelDates {
		start = time.Date(req.StartYear, time.Month(req.StartMonth), 1, 0, 0, 0, 0, time.UTC)
	}

	results := eng.Run()
	rows := make([]PeriodRowDTO, 0, len(results))
	for _, res := range results {
		row := PeriodRowDTO{
			Period:    res.Period,
			Payment:   res.Payment.StringFixed(2),
			Principal: res.Principal.StringFixed(2),
			Interest:  res.Interest.StringFixed(2),
			Balance:   res.Balance.StringFixed(2),
		}
		if labelDates {
			row.Date = start.AddDate(0, res.Period-1, 0).Format("2006-01")
		}
		rows = append(rows, row)
	}

	return &ScheduleResponse{
		BasePayment: eng.BasePayment().StringFixed(2),
		Periods:     len(rows),
		Rows:        rows,
		Totals:      newTotalsDTO(eng.Totals()),
	}, nil
}

// writeAndCache serializes the response, stores it, and writes it out.
func (h *Handler) writeAndCache(w http.ResponseWriter, r *http.Request, key string, resp interface{}) {
	body, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := h.Cache.Set(r.Context(), key, string(body)); err != nil {
		// Cache failures are not request failures.
		log.Printf("Warning: failed to cache schedule: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// =============================================================================
// HELPERS
// =============================================================================

// cacheKey builds a canonical key from the request. encoding/json sorts
// map keys, so equal configurations produce equal keys.
func cacheKey(kind string, req ScheduleRequest) string {
	body, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return kind + ":" + string(body)
}

func writeCached(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "hit")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// writeScheduleError maps engine errors to HTTP status codes.
func writeScheduleError(w http.ResponseWriter, err error) {
	if schedule.IsValidationError(err) || errors.Is(err, errBadStartDate) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}
