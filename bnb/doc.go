// Package bnb implements the branch-and-bound driver of spec.md §4.6: it
// repeatedly calls colgen.Run to obtain each node's LP bound, selects a
// fractional branch variable by the max-fractional-part rule, spawns
// floor/ceil children that inherit the parent's column set, and explores
// the tree in best-bound order until an integer incumbent is proven
// optimal or MAX_NODES is exhausted.
//
// Nodes live in an arena-indexed pool (spec.md §9 "Pointer chains ->
// indexed owned containers") rather than a pointer-linked tree: a Node is
// referenced by its integer id into the driver's node pool, and a node's parent,
// children, and tree position are all expressed as ids, never pointers.
package bnb
