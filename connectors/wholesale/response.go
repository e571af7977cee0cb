package wholesale

import (
	"fmt"
	"time"

	"github.com/voltplan/voltplan/core/model"
)

// Response is the payload returned by the day-ahead price endpoint.
type Response struct {
	Points []Point `json:"prices"`
}

// Point is one market interval.
type Point struct {
	StartTime        time.Time `json:"start_time"`
	ConsumptionPrice float64   `json:"consumption_price"`
	ProductionPrice  float64   `json:"production_price"`
}

// Series converts the response into the domain price series, preserving
// interval order.
func (r *Response) Series() (model.PriceSeries, error) {
	if len(r.Points) == 0 {
		return nil, fmt.Errorf("market response contains no prices")
	}
	consumption := make([]float64, len(r.Points))
	production := make([]float64, len(r.Points))
	for i, p := range r.Points {
		consumption[i] = p.ConsumptionPrice
		production[i] = p.ProductionPrice
	}
	return model.NewPriceSeries(consumption, production)
}
