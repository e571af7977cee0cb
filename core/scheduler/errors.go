package scheduler

import "fmt"

// ValidationError reports a malformed or physically inconsistent request.
// It names the violated invariant so the caller can surface it verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid schedule request: " + e.Reason
}

// InfeasibleError reports that no schedule satisfies all constraints, e.g.
// a terminal target unreachable within the horizon at the given power
// capacity. It reflects a parameter problem, not a system fault.
type InfeasibleError struct {
	Reason string
}

func (e *InfeasibleError) Error() string {
	return "schedule infeasible: " + e.Reason
}

// SolverError reports that the backend terminated without a feasibility
// determination.
type SolverError struct {
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver failure: %v", e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }

// InvariantError reports a post-solve check failure. It indicates a modeling
// or solver-interface bug, never a user error, and is never silently
// corrected.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "schedule invariant violated: " + e.Reason
}
