package metrics

import (
	"fmt"

	coremetrics "github.com/voltplan/voltplan/core/metrics"
)

// NewFromConfig assembles the configured sinks: none, one, or a fan-out over
// prometheus and influx.
func NewFromConfig(cfg coremetrics.Config) (coremetrics.ScheduleSink, error) {
	var sinks []coremetrics.ScheduleSink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSink(cfg)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
