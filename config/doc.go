// Package config implements C11: functional-option configuration for the
// solver limits spec.md §9's REDESIGN FLAG demands be configuration rather
// than hardcoded constants (MAX_NODES, MAX_CG_ITER, the feasibility and
// reduced-cost epsilons) plus the pricing backend selector. The style
// mirrors the teacher's matrix/tsp Options pattern: unexported fields,
// WithX constructors, panic on nonsensical values at construction time
// rather than a deferred validation error.
package config
