package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/voltplan/voltplan/core/metrics"
)

// PromSink records schedule computations in Prometheus metrics.
type PromSink struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	costs    prometheus.Gauge
}

// NewPromSink registers schedule metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.ScheduleSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.ScheduleSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_solves_total",
		Help: "Total number of schedule computations",
	}, []string{"outcome", "top_up"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schedule_solve_duration_seconds",
		Help:    "Wall time of one schedule computation",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	costs := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_last_costs",
		Help: "Objective value of the most recent optimal schedule",
	})

	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(costs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			costs = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{solves: solves, duration: duration, costs: costs}, nil
}

// RecordSchedule increments the solve counter and observes the duration.
func (s *PromSink) RecordSchedule(ev coremetrics.ScheduleEvent) error {
	s.solves.WithLabelValues(ev.Outcome, strconv.FormatBool(ev.TopUp)).Inc()
	s.duration.WithLabelValues(ev.Outcome).Observe(ev.Duration.Seconds())
	if ev.Outcome == "optimal" {
		s.costs.Set(ev.Costs)
	}
	return nil
}
