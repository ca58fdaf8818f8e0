// Package report implements C7 (spec.md §4.7): converting the
// branch-and-bound incumbent into a concrete per-sheet cutting plan and
// emitting it through a small Writer contract. Writing the plan to disk is
// treated as an external collaborator (spec.md §1, §6) — this package
// defines the plan data and the Writer interface it is handed to; a
// concrete FileWriter satisfying spec.md §6's output format is provided as
// the default implementation cmd wires in.
package report
