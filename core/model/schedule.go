package model

// ScheduleRequest describes one battery scheduling problem. All SoC values
// are absolute energy in the same unit as StorageCapacity (typically kWh),
// powers are energy per interval.
type ScheduleRequest struct {
	// SoCStart is the state of charge at the beginning of the horizon.
	SoCStart float64 `json:"soc_start"`
	// SoCMax and SoCMin bound the state of charge at every interval.
	SoCMax float64 `json:"soc_max"`
	SoCMin float64 `json:"soc_min"`
	// SoCTarget is the required terminal state of charge. Ignored when
	// TopUp is set.
	SoCTarget float64 `json:"soc_target"`
	// PowerCapacity limits the magnitude of net charge or discharge power
	// per interval.
	PowerCapacity float64 `json:"power_capacity"`
	// StorageCapacity is the total usable energy capacity.
	StorageCapacity float64 `json:"storage_capacity"`
	// ConversionEfficiency is the one-way efficiency in (0, 1]. Charging
	// with power p stores eta*p, discharging p drains p/eta from the store.
	ConversionEfficiency float64 `json:"conversion_efficiency"`
	// TopUp forces the terminal state of charge to SoCMax instead of
	// SoCTarget.
	TopUp bool `json:"top_up"`
	// Prices is the per-interval price series defining the horizon.
	Prices PriceSeries `json:"prices"`
}

// DefaultRequest returns a request carrying the documented parameter
// defaults. Prices are left to the caller.
func DefaultRequest() ScheduleRequest {
	return ScheduleRequest{
		SoCStart:             20.0,
		SoCMax:               90.0,
		SoCMin:               10.0,
		SoCTarget:            90.0,
		PowerCapacity:        10.0,
		StorageCapacity:      100.0,
		ConversionEfficiency: 1.0,
		TopUp:                false,
	}
}

// Horizon returns the number of planning intervals.
func (r ScheduleRequest) Horizon() int { return r.Prices.Len() }

// TerminalTarget returns the state of charge the schedule must end on.
func (r ScheduleRequest) TerminalTarget() float64 {
	if r.TopUp {
		return r.SoCMax
	}
	return r.SoCTarget
}

// ScheduleResult is the outcome of one solve: net power per interval
// (positive = charging), the resulting SoC trajectory (one more point than
// the horizon, starting at SoCStart) and the total cost, which is negative
// when discharge revenue exceeds charge cost.
type ScheduleResult struct {
	Costs         float64   `json:"costs"`
	PowerSchedule []float64 `json:"power_schedule"`
	SoCSchedule   []float64 `json:"soc_schedule"`
}
