// Package schedule exposes the battery scheduler over HTTP.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/voltplan/voltplan/core/logger"
	"github.com/voltplan/voltplan/core/model"
	"github.com/voltplan/voltplan/core/prices"
	"github.com/voltplan/voltplan/core/scheduler"
)

// Publisher forwards a computed schedule to downstream consumers. A nil
// publisher disables forwarding.
type Publisher interface {
	PublishSchedule(res model.ScheduleResult) error
}

type errorBody struct {
	Error string `json:"error"`
}

// NewHandler returns the HTTP handler for GET /schedule.
//
// Query parameters (all optional, with the documented defaults):
// soc-start, soc-max, soc-min, soc-target, power-capacity,
// storage-capacity, conversion-efficiency, top-up. Prices come from the
// configured provider.
func NewHandler(sched *scheduler.Scheduler, provider prices.Provider, pub Publisher, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		req, err := requestFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		series, err := provider.Prices(r.Context())
		if err != nil {
			log.Errorf("price provider: %v", err)
			writeError(w, http.StatusBadGateway, fmt.Errorf("price data unavailable"))
			return
		}
		req.Prices = series

		res, err := sched.Schedule(req)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		if pub != nil {
			// Forwarding is best effort and never fails the request.
			if err := pub.PublishSchedule(*res); err != nil {
				log.Warnf("schedule publish: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			log.Errorf("encode response: %v", err)
		}
	})
}

// NewHealthHandler reports liveness.
func NewHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func requestFromQuery(r *http.Request) (model.ScheduleRequest, error) {
	req := model.DefaultRequest()
	q := r.URL.Query()
	fields := []struct {
		key string
		dst *float64
	}{
		{"soc-start", &req.SoCStart},
		{"soc-max", &req.SoCMax},
		{"soc-min", &req.SoCMin},
		{"soc-target", &req.SoCTarget},
		{"power-capacity", &req.PowerCapacity},
		{"storage-capacity", &req.StorageCapacity},
		{"conversion-efficiency", &req.ConversionEfficiency},
	}
	for _, f := range fields {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, fmt.Errorf("parameter %s: %q is not a number", f.key, raw)
		}
		*f.dst = v
	}
	if raw := q.Get("top-up"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return req, fmt.Errorf("parameter top-up: %q is not a boolean", raw)
		}
		req.TopUp = v
	}
	return req, nil
}

// statusFor maps the scheduler's error taxonomy onto transport semantics:
// bad parameters are the client's fault, an unsatisfiable parameter set is
// distinguishable from both, and solver or invariant trouble is ours.
func statusFor(err error) int {
	var verr *scheduler.ValidationError
	var ierr *scheduler.InfeasibleError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &ierr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
}
