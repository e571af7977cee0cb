package scheduler

import (
	"fmt"

	"github.com/voltplan/voltplan/core/model"
)

// Validate checks the structural invariants of a request. The HTTP layer
// performs its own parameter checks; this re-validation keeps the core safe
// against any caller.
func Validate(req model.ScheduleRequest) error {
	if req.Horizon() < 1 {
		return &ValidationError{Reason: "price series must contain at least one interval"}
	}
	if req.SoCMin >= req.SoCMax {
		return &ValidationError{Reason: fmt.Sprintf("soc_min (%g) must be less than soc_max (%g)", req.SoCMin, req.SoCMax)}
	}
	if req.SoCStart < req.SoCMin || req.SoCStart > req.SoCMax {
		return &ValidationError{Reason: fmt.Sprintf("soc_start (%g) must be between soc_min (%g) and soc_max (%g)", req.SoCStart, req.SoCMin, req.SoCMax)}
	}
	if req.StorageCapacity <= 0 {
		return &ValidationError{Reason: fmt.Sprintf("storage_capacity (%g) must be positive", req.StorageCapacity)}
	}
	if req.SoCTarget > req.StorageCapacity {
		return &ValidationError{Reason: fmt.Sprintf("soc_target (%g) cannot exceed storage_capacity (%g)", req.SoCTarget, req.StorageCapacity)}
	}
	if req.SoCTarget < req.SoCMin || req.SoCTarget > req.SoCMax {
		return &ValidationError{Reason: fmt.Sprintf("soc_target (%g) must be between soc_min (%g) and soc_max (%g)", req.SoCTarget, req.SoCMin, req.SoCMax)}
	}
	if req.PowerCapacity <= 0 {
		return &ValidationError{Reason: fmt.Sprintf("power_capacity (%g) must be positive", req.PowerCapacity)}
	}
	if req.ConversionEfficiency <= 0 || req.ConversionEfficiency > 1 {
		return &ValidationError{Reason: fmt.Sprintf("conversion_efficiency (%g) must be in (0, 1]", req.ConversionEfficiency)}
	}
	for t, p := range req.Prices {
		// The charge/discharge split keeps the LP exact only when prices
		// are non-negative and feeding in never pays more than drawing
		// costs; outside that regime the optimum charges and discharges
		// simultaneously and the split no longer encodes net power.
		if p.Consumption < 0 || p.Production < 0 {
			return &ValidationError{Reason: fmt.Sprintf("negative price at interval %d is not supported", t)}
		}
		if p.Production > p.Consumption {
			return &ValidationError{Reason: fmt.Sprintf("production price (%g) above consumption price (%g) at interval %d is not supported", p.Production, p.Consumption, t)}
		}
	}
	return nil
}

// checkReachability rejects terminal targets that are provably out of reach
// even at full power for the whole horizon, sparing a solver round-trip for
// the obvious cases. Subtler infeasibilities are left to the solver.
func checkReachability(req model.ScheduleRequest) error {
	target := req.TerminalTarget()
	horizon := float64(req.Horizon())
	eta := req.ConversionEfficiency
	maxRise := horizon * req.PowerCapacity * eta
	maxFall := horizon * req.PowerCapacity / eta
	switch {
	case target-req.SoCStart > maxRise+invariantTolerance:
		return &InfeasibleError{Reason: fmt.Sprintf(
			"terminal target %g unreachable from soc_start %g: at most %g can be charged in %d intervals at power_capacity %g",
			target, req.SoCStart, maxRise, req.Horizon(), req.PowerCapacity)}
	case req.SoCStart-target > maxFall+invariantTolerance:
		return &InfeasibleError{Reason: fmt.Sprintf(
			"terminal target %g unreachable from soc_start %g: at most %g can be discharged in %d intervals at power_capacity %g",
			target, req.SoCStart, maxFall, req.Horizon(), req.PowerCapacity)}
	}
	return nil
}
