// Package pricing implements the two pricing subproblems of spec.md §4.4 —
// SP1 (strip-pattern pricing on the sheet) and SP2 (item-pattern pricing on
// a strip of a given type) — behind a single Pricer capability, with three
// interchangeable backends that must agree on the optimal value:
//
//   - Knapsack: spec.md §4.4 names this "Knapsack-via-LP-oracle" but offers
//     its own fallback — "delegate to an LP oracle that supports integer
//     variables, or use any bounded-knapsack DP." lpsolve.Oracle has no
//     native integer variables, so this backend takes that DP fallback
//     directly rather than discarding a continuous-relaxation bound it
//     would never use.
//   - ArcFlow: builds the positional DAG of spec.md §3 and solves max-weight
//     unit source-to-sink flow by handing the flow-conservation LP to the
//     lpsolve oracle — the DAG is acyclic with nonnegative arc profits (the
//     RMP's duals are nonnegative, being shadow prices of >= rows in a
//     minimization LP), so the LP relaxation is integral and the oracle
//     alone suffices, per spec.md §4.4.
//   - DP: the classical 1-D unbounded-knapsack recurrence (no per-type
//     count limit) with traceback.
//
// Ties among equal-value argmax types are broken by lowest type index in
// all three backends, the reproducibility rule spec.md §4.4 requires.
package pricing
