// Package loader implements C9 (spec.md §4.1, §6): reading the
// tab-separated instance file format into an instance.Instance. Malformed
// tokens or out-of-range dimensions are reported as
// instance.ErrInvalidInstance, the same sentinel instance.NewInstance
// itself uses, so callers have one error to check regardless of whether
// the failure came from parsing or from construction.
package loader
