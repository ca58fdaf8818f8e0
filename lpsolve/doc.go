// Package lpsolve implements the LP oracle contract of spec.md §4.3: build an
// LP over a set of columns with per-column upper bounds, add columns to a
// warm-started basis, solve to dual-optimality, and read back primal values
// and row dual prices.
//
// The engine is a two-phase, bounded-variable revised simplex built on
// gonum.org/v1/gonum/mat dense vectors and matrices for the basis-inverse
// arithmetic — the same foundation rlacjfjin-GoMILP's milpProblem uses
// (gonum/mat + a simplex/LP backend), generalized here to expose row duals
// and per-column upper bounds, which the branch-and-bound driver needs to
// pin variables without rebuilding the LP from scratch.
//
// Every row in this system is of the form row_lb <= sum a_ij*x_j <= row_ub
// with row_ub == +Inf (an inequality, "strip produced >= strip consumed" /
// "production >= demand") or row_lb == row_ub (an equality, flow
// conservation in the arc-flow pricing backend). Finite, non-degenerate
// ranges (row_lb < row_ub < +Inf) are not used anywhere in this solver and
// are rejected by Build, as is any negative row_lb: every row_lb must be
// >= 0.
package lpsolve
