// Package colset defines the two column shapes that are the RMP's
// variables (spec.md §3): Y-columns (strip patterns cut from a sheet) and
// X-columns (item patterns cut from a strip of a given type), plus the
// feasibility checks spec.md §8 requires to hold for every column ever
// added to any RMP.
package colset
