package colgen

import "errors"

// ErrIterationLimit is returned (wrapped) when a node's column-generation
// loop exhausts its iteration budget without reaching reduced-cost
// convergence. Per spec.md §7 this is a warning, not a fatal error: the
// caller keeps the Result returned alongside it — LB is still a valid,
// possibly loose, lower bound because the RMP is a relaxation.
var ErrIterationLimit = errors.New("colgen: reached iteration limit before convergence")
