package metrics

import coremetrics "github.com/voltplan/voltplan/core/metrics"

// MultiSink fans schedule events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.ScheduleSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.ScheduleSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSchedule forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordSchedule(ev coremetrics.ScheduleEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSchedule(ev); err != nil {
			return err
		}
	}
	return nil
}
