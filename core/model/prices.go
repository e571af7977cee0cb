package model

import "fmt"

// PricePoint holds the consumption and production price for one interval.
// Consumption is what the battery pays per unit of energy drawn from the
// grid, Production is what it earns per unit fed back.
type PricePoint struct {
	Consumption float64 `json:"consumption"`
	Production  float64 `json:"production"`
}

// PriceSeries is an ordered sequence of price points. Its length defines the
// planning horizon.
type PriceSeries []PricePoint

// NewPriceSeries pairs consumption and production price curves into a series.
// Both curves must be non-empty and of equal length.
func NewPriceSeries(consumption, production []float64) (PriceSeries, error) {
	if len(consumption) == 0 {
		return nil, fmt.Errorf("price series is empty")
	}
	if len(consumption) != len(production) {
		return nil, fmt.Errorf("price series length mismatch: %d consumption vs %d production", len(consumption), len(production))
	}
	series := make(PriceSeries, len(consumption))
	for i := range consumption {
		series[i] = PricePoint{Consumption: consumption[i], Production: production[i]}
	}
	return series, nil
}

// Len returns the number of intervals in the horizon.
func (p PriceSeries) Len() int { return len(p) }
