package scheduler

import (
	"errors"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solver turns a built model into primal variable values. Implementations
// must be stateless across calls so concurrent requests never share solver
// state.
type Solver interface {
	Solve(m *Model) ([]float64, error)
}

// SimplexSolver solves the program with gonum's dense simplex method. The
// program is linear, so any optimum it finds is global, and Bland's rule
// makes repeated solves of the same model deterministic.
type SimplexSolver struct {
	// Tol is the simplex convergence tolerance. Zero selects the default.
	Tol float64
}

const defaultSimplexTol = 1e-7

// lpSolve points to the function used to solve the LP. It can be overridden
// in tests to simulate solver failures.
var lpSolve = solveLP

// Solve runs the simplex algorithm once and classifies the outcome: primal
// values on success, InfeasibleError when no assignment satisfies the
// constraints, SolverError for any abnormal termination.
func (s SimplexSolver) Solve(m *Model) ([]float64, error) {
	tol := s.Tol
	if tol == 0 {
		tol = defaultSimplexTol
	}
	sol, err := lpSolve(m, tol)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return nil, &InfeasibleError{Reason: "no schedule satisfies the SoC and power constraints; " +
				"the terminal target may be unreachable within the horizon at the given power capacity"}
		}
		return nil, &SolverError{Err: err}
	}
	return sol, nil
}

func solveLP(m *Model, tol float64) ([]float64, error) {
	cStd, aStd, bStd := lp.Convert(m.C, m.G, m.H, m.A, m.B)
	_, sol, err := lp.Simplex(cStd, aStd, bStd, tol, nil)
	if err != nil {
		return nil, err
	}
	// Convert splits each free variable into a positive and a negative
	// part; recover the originals from the first 2n entries.
	n := len(m.C)
	x := make([]float64, n)
	for i := range x {
		x[i] = sol[i] - sol[n+i]
	}
	return x, nil
}
