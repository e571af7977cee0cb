// Package scheduler computes cost-optimal battery charge/discharge plans.
//
// Each call builds a fresh linear program from the request (charge and
// discharge split into separate non-negative variables so losses apply to
// the energy actually converted), solves it with a simplex backend and maps
// the primal values back onto a power and SoC schedule. Nothing is shared
// between calls.
package scheduler
