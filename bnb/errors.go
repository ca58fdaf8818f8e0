package bnb

import "errors"

// ErrNodeLimit is returned (wrapped) when the driver stops because it
// reached MAX_NODES before the open set emptied. Per spec.md §7 this is a
// warning: the returned Result still carries the best incumbent found and
// its gap.
var ErrNodeLimit = errors.New("bnb: reached node limit before proving optimality")

// ErrRootInfeasible marks a root node whose RMP had no feasible solution —
// per spec.md §7, fatal: the heuristic seed is constructed to be feasible,
// so this can only mean a bug or a corrupted instance.
var ErrRootInfeasible = errors.New("bnb: root RMP is infeasible")
