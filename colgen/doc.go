// Package colgen implements the RMP <-> pricing loop of spec.md §4.5: build
// or extend the restricted master LP from a node's column set, read duals,
// run SP1 and (conditionally) SP2 through a Pricer, and append improving
// columns until no reduced-cost test fires or MAX_CG_ITER is exhausted.
//
// The RMP has J strip-balance rows (always present) and one demand row per
// item type with positive demand (spec.md §3, §8 "Demand d=0 is elided").
// Both row families are ">=" rows with an infinite upper bound, the only
// row shape colgen needs from the lpsolve oracle.
package colgen
