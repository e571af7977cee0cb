package scheduler

import (
	"math"
	"testing"

	"github.com/voltplan/voltplan/core/model"
)

func TestBuildDimensions(t *testing.T) {
	req := model.DefaultRequest()
	req.Prices = flatPrices(t, 4, 2, 1)

	m := Build(req)
	if m.Horizon != 4 {
		t.Fatalf("horizon %d, want 4", m.Horizon)
	}
	if len(m.C) != 8 {
		t.Fatalf("objective length %d, want 8", len(m.C))
	}
	rows, cols := m.G.Dims()
	if rows != len(m.H) || cols != len(m.C) {
		t.Fatalf("inequality dims %dx%d vs h %d, c %d", rows, cols, len(m.H), len(m.C))
	}
	// 2T net power windows, 2T non-negativity rows, 2(T-1) SoC bounds.
	if rows != 22 {
		t.Fatalf("inequality rows %d, want 22", rows)
	}
	aRows, aCols := m.A.Dims()
	if aRows != 1 || aCols != 8 || len(m.B) != 1 {
		t.Fatalf("equality dims %dx%d, b %d", aRows, aCols, len(m.B))
	}
	if m.B[0] != req.SoCTarget-req.SoCStart {
		t.Fatalf("equality rhs %g, want %g", m.B[0], req.SoCTarget-req.SoCStart)
	}
}

func TestBuildTopUpTarget(t *testing.T) {
	req := model.DefaultRequest()
	req.SoCTarget = 30
	req.TopUp = true
	req.Prices = flatPrices(t, 8, 2, 1)

	m := Build(req)
	if m.B[0] != req.SoCMax-req.SoCStart {
		t.Fatalf("top-up rhs %g, want %g", m.B[0], req.SoCMax-req.SoCStart)
	}
}

func TestBuildEfficiencyCoefficients(t *testing.T) {
	req := model.DefaultRequest()
	req.ConversionEfficiency = 0.8
	req.Prices = flatPrices(t, 2, 2, 1)

	m := Build(req)
	if got := m.A.At(0, 0); math.Abs(got-0.8) > 1e-12 {
		t.Fatalf("charge coefficient %g, want 0.8", got)
	}
	if got := m.A.At(0, 2); math.Abs(got+1/0.8) > 1e-12 {
		t.Fatalf("discharge coefficient %g, want %g", got, -1/0.8)
	}
}

func TestSimplexSolverDirect(t *testing.T) {
	// One interval, target one unit above start: the only optimum charges
	// exactly one unit.
	req := model.DefaultRequest()
	req.SoCTarget = 21
	req.Prices = flatPrices(t, 1, 2, 1)

	sol, err := SimplexSolver{}.Solve(Build(req))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if len(sol) != 2 {
		t.Fatalf("solution length %d, want 2", len(sol))
	}
	if math.Abs(sol[0]-1) > 1e-6 || math.Abs(sol[1]) > 1e-6 {
		t.Fatalf("unexpected solution %v", sol)
	}
}
