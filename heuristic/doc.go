// Package heuristic produces the seed column set that guarantees RMP
// feasibility at the root node (spec.md §4.2): one Y-column per strip type
// and one X-column per demanded item type, holding a single unit of that
// item in the strip type of equal width.
package heuristic
