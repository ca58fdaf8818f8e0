package lpsolve

import "errors"

// ErrInfeasible is returned by Solve when no feasible primal exists for the
// current column set and row bounds (spec.md §4.3, §7 OracleInfeasible).
var ErrInfeasible = errors.New("lpsolve: infeasible")

// ErrInternal marks a solver-internal failure (cycling guard tripped, a
// malformed row specification) that spec.md §7 treats as OracleInternal —
// always fatal, never recovered by a caller.
var ErrInternal = errors.New("lpsolve: internal error")

// ErrNotSolved is returned by Primal/Dual when called before a successful Solve.
var ErrNotSolved = errors.New("lpsolve: Primal/Dual called before a successful Solve")
