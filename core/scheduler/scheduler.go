package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/voltplan/voltplan/core/logger"
	"github.com/voltplan/voltplan/core/metrics"
	"github.com/voltplan/voltplan/core/model"
)

// invariantTolerance bounds the numerical slack accepted by the post-solve
// checks and the reachability pre-check.
const invariantTolerance = 1e-6

// Scheduler runs the full pipeline: validate, build, solve, extract. It is
// safe for concurrent use; every call works on a fresh model.
type Scheduler struct {
	solver Solver
	log    logger.Logger
	sink   metrics.ScheduleSink
}

// New creates a Scheduler. A nil solver selects the simplex backend, nil
// logger and sink are replaced with no-ops.
func New(solver Solver, log logger.Logger, sink metrics.ScheduleSink) *Scheduler {
	if solver == nil {
		solver = SimplexSolver{}
	}
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Scheduler{solver: solver, log: log, sink: sink}
}

// Schedule computes the cost-optimal plan for the request. Failures are
// returned as one of the typed errors of this package, never swallowed.
func (s *Scheduler) Schedule(req model.ScheduleRequest) (*model.ScheduleResult, error) {
	id := uuid.NewString()
	start := time.Now()

	if err := Validate(req); err != nil {
		s.record(id, req, "validation_error", 0, start)
		return nil, err
	}
	if err := checkReachability(req); err != nil {
		s.record(id, req, "infeasible", 0, start)
		return nil, err
	}

	m := Build(req)
	sol, err := s.solver.Solve(m)
	if err != nil {
		outcome := "solver_error"
		if _, ok := err.(*InfeasibleError); ok {
			outcome = "infeasible"
		}
		s.record(id, req, outcome, 0, start)
		s.log.Warnf("solve failed: %v", err)
		return nil, err
	}

	res, err := extract(req, sol)
	if err != nil {
		s.record(id, req, "invariant_error", 0, start)
		s.log.Errorf("post-solve check failed: %v", err)
		return nil, err
	}

	s.record(id, req, "optimal", res.Costs, start)
	s.log.Debugw("schedule computed", map[string]any{
		"request_id": id,
		"horizon":    req.Horizon(),
		"top_up":     req.TopUp,
		"costs":      res.Costs,
	})
	return res, nil
}

func (s *Scheduler) record(id string, req model.ScheduleRequest, outcome string, costs float64, start time.Time) {
	ev := metrics.ScheduleEvent{
		RequestID: id,
		Horizon:   req.Horizon(),
		TopUp:     req.TopUp,
		Outcome:   outcome,
		Costs:     costs,
		Duration:  time.Since(start),
		Time:      time.Now(),
	}
	if err := s.sink.RecordSchedule(ev); err != nil {
		s.log.Warnf("metrics sink: %v", err)
	}
}

// extract maps primal values onto the domain result and verifies the model
// invariants the solution must satisfy. A violation is a modeling bug, so it
// surfaces as InvariantError instead of being clamped.
func extract(req model.ScheduleRequest, sol []float64) (*model.ScheduleResult, error) {
	horizon := req.Horizon()
	if len(sol) != 2*horizon {
		return nil, &InvariantError{Reason: fmt.Sprintf("solver returned %d values for %d variables", len(sol), 2*horizon)}
	}

	power := make([]float64, horizon)
	var costs float64
	for t := 0; t < horizon; t++ {
		charge, discharge := sol[t], sol[horizon+t]
		power[t] = charge - discharge
		costs += req.Prices[t].Consumption*charge - req.Prices[t].Production*discharge
	}
	soc := ComputeSoCSchedule(power, req.SoCStart, req.ConversionEfficiency)

	for t, p := range power {
		if math.Abs(p) > req.PowerCapacity+invariantTolerance {
			return nil, &InvariantError{Reason: fmt.Sprintf("power %g at interval %d exceeds capacity %g", p, t, req.PowerCapacity)}
		}
	}
	for t, v := range soc {
		if v < req.SoCMin-invariantTolerance || v > req.SoCMax+invariantTolerance {
			return nil, &InvariantError{Reason: fmt.Sprintf("soc %g at step %d outside [%g, %g]", v, t, req.SoCMin, req.SoCMax)}
		}
	}
	if soc[0] != req.SoCStart {
		return nil, &InvariantError{Reason: fmt.Sprintf("soc schedule starts at %g instead of %g", soc[0], req.SoCStart)}
	}
	if target := req.TerminalTarget(); math.Abs(soc[horizon]-target) > invariantTolerance {
		return nil, &InvariantError{Reason: fmt.Sprintf("terminal soc %g misses target %g", soc[horizon], target)}
	}

	return &model.ScheduleResult{Costs: costs, PowerSchedule: power, SoCSchedule: soc}, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
