package prices

import (
	"context"

	"github.com/voltplan/voltplan/core/model"
)

// Provider supplies the price series the schedule is optimized against.
type Provider interface {
	Prices(ctx context.Context) (model.PriceSeries, error)
}

// Static serves a fixed series, typically loaded from configuration.
type Static struct {
	series model.PriceSeries
}

// NewStatic wraps a fixed price series.
func NewStatic(series model.PriceSeries) *Static {
	return &Static{series: series}
}

// Prices returns the configured series.
func (s *Static) Prices(context.Context) (model.PriceSeries, error) {
	return s.series, nil
}

// DefaultSeries returns the stock 24 hour day-ahead curve used when no
// prices are configured.
func DefaultSeries() model.PriceSeries {
	production := []float64{7, 2, 3, 4, 1, 6, 7, 2, 3, 4, 1, 6, 7, 2, 3, 4, 1, 6, 7, 2, 3, 4, 1, 6}
	consumption := []float64{8, 3, 4, 5, 2, 7, 8, 3, 4, 5, 2, 7, 8, 3, 4, 5, 2, 7, 8, 3, 4, 5, 2, 7}
	series, err := model.NewPriceSeries(consumption, production)
	if err != nil {
		// Both curves are compile-time constants of equal length.
		panic(err)
	}
	return series
}
