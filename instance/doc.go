// Package instance defines the immutable problem data for the two-stage
// guillotine 2D cutting-stock problem: sheet dimensions, item types, and the
// strip types derived from them.
//
// An Instance is built once (by loader.Load or NewInstance) and shared
// read-only by every downstream component — the heuristic, the pricing
// subproblems, the column-generation engine, and the branch-and-bound
// driver all treat it as a value, never a mutable resource.
package instance
