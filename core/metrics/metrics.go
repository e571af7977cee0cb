package metrics

import "time"

// ScheduleEvent describes one schedule computation to be recorded.
type ScheduleEvent struct {
	RequestID string
	Horizon   int
	TopUp     bool
	// Outcome is one of "optimal", "validation_error", "infeasible",
	// "solver_error" or "invariant_error".
	Outcome  string
	Costs    float64
	Duration time.Duration
	Time     time.Time
}

// ScheduleSink records schedule computations for observability purposes.
type ScheduleSink interface {
	RecordSchedule(ev ScheduleEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordSchedule(ScheduleEvent) error { return nil }
