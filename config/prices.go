package config

import (
	"fmt"

	"github.com/voltplan/voltplan/core/model"
	"github.com/voltplan/voltplan/core/prices"
)

// PricesConfig selects where the price series comes from.
type PricesConfig struct {
	// Source is "static" or "wholesale".
	Source string `json:"source"`
	// Consumption and Production define the static curve. Empty curves
	// fall back to the stock 24 hour series.
	Consumption []float64 `json:"consumption"`
	Production  []float64 `json:"production"`
	// URL and Token configure the wholesale market fetcher.
	URL   string `json:"url"`
	Token string `json:"token"`
}

// SetDefaults applies sane defaults.
func (c *PricesConfig) SetDefaults() {
	if c.Source == "" {
		c.Source = "static"
	}
}

// Validate checks the selected source.
func (c PricesConfig) Validate() error {
	switch c.Source {
	case "static":
		if len(c.Consumption) != len(c.Production) {
			return fmt.Errorf("consumption and production curves must have equal length")
		}
	case "wholesale":
		if c.URL == "" {
			return fmt.Errorf("url is required for wholesale prices")
		}
	default:
		return fmt.Errorf("unknown price source %s", c.Source)
	}
	return nil
}

// StaticSeries builds the configured static series, falling back to the
// stock curve when none is set.
func (c PricesConfig) StaticSeries() (model.PriceSeries, error) {
	if len(c.Consumption) == 0 {
		return prices.DefaultSeries(), nil
	}
	return model.NewPriceSeries(c.Consumption, c.Production)
}
