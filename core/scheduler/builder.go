package scheduler

import (
	"github.com/voltplan/voltplan/core/model"
	"gonum.org/v1/gonum/mat"
)

// Model is a linear program in general form:
//
//	minimize cᵀx subject to Gx <= h, Ax = b
//
// built for exactly one request and discarded after the solve. The first
// Horizon entries of x are charge powers, the next Horizon are discharge
// powers, both non-negative.
type Model struct {
	Horizon int
	C       []float64
	G       *mat.Dense
	H       []float64
	A       *mat.Dense
	B       []float64
}

// Build constructs the optimization model for a validated request.
//
// Splitting net power into charge u_t and discharge v_t lets the one-way
// conversion efficiency apply to the energy actually converted:
// soc advances by eta*u_t - v_t/eta each interval. Validation guarantees
// non-negative prices with production never above consumption, so the
// optimum never charges and discharges simultaneously and no explicit
// mutual-exclusion constraint is needed.
func Build(req model.ScheduleRequest) *Model {
	horizon := req.Horizon()
	n := 2 * horizon
	eta := req.ConversionEfficiency

	c := make([]float64, n)
	for t, p := range req.Prices {
		c[t] = p.Consumption
		c[horizon+t] = -p.Production
	}

	// Inequalities: net power window, variable non-negativity, and SoC
	// bounds on every interval except the last (pinned by the equality).
	rows := 4*horizon + 2*(horizon-1)
	g := mat.NewDense(rows, n, nil)
	h := make([]float64, rows)
	row := 0
	for t := 0; t < horizon; t++ {
		g.Set(row, t, 1)
		g.Set(row, horizon+t, -1)
		h[row] = req.PowerCapacity
		row++
	}
	for t := 0; t < horizon; t++ {
		g.Set(row, t, -1)
		g.Set(row, horizon+t, 1)
		h[row] = req.PowerCapacity
		row++
	}
	for t := 0; t < horizon; t++ {
		g.Set(row, t, -1)
		row++
	}
	for t := 0; t < horizon; t++ {
		g.Set(row, horizon+t, -1)
		row++
	}
	for j := 0; j < horizon-1; j++ {
		for k := 0; k <= j; k++ {
			g.Set(row, k, eta)
			g.Set(row, horizon+k, -1/eta)
		}
		h[row] = req.SoCMax - req.SoCStart
		row++
	}
	for j := 0; j < horizon-1; j++ {
		for k := 0; k <= j; k++ {
			g.Set(row, k, -eta)
			g.Set(row, horizon+k, 1/eta)
		}
		h[row] = req.SoCStart - req.SoCMin
		row++
	}

	// Terminal equality: the full-horizon stock change lands exactly on
	// the target (soc_target, or soc_max under top-up).
	a := mat.NewDense(1, n, nil)
	for t := 0; t < horizon; t++ {
		a.Set(0, t, eta)
		a.Set(0, horizon+t, -1/eta)
	}
	b := []float64{req.TerminalTarget() - req.SoCStart}

	return &Model{Horizon: horizon, C: c, G: g, H: h, A: a, B: b}
}
