package pricing

import (
	"github.com/cutstock2d/cutstock2d/colset"
	"github.com/cutstock2d/cutstock2d/instance"
)

// knapsackPricer is the "knapsack-via-LP-oracle" backend spec.md §4.4
// names, with the alternative spec.md §4.4 itself allows: "delegate to an
// LP oracle that supports integer variables, or use any bounded-knapsack
// DP." lpsolve.Oracle is LP-only (no native integer variables — see
// lpsolve/doc.go), so this backend takes the DP alternative directly
// rather than round-tripping through the oracle for a continuous
// relaxation bound it would then have to discard in favor of the DP's
// exact integer answer anyway.
type knapsackPricer struct{}

// NewKnapsack constructs the knapsack-via-DP pricing backend.
func NewKnapsack() Pricer { return knapsackPricer{} }

func (knapsackPricer) SolveSP1(inst instance.Instance, pi []float64) (colset.YColumn, float64, error) {
	return dpPricer{}.SolveSP1(inst, pi)
}

func (knapsackPricer) SolveSP2(inst instance.Instance, stripType int, beta []float64) (colset.XColumn, float64, error) {
	return dpPricer{}.SolveSP2(inst, stripType, beta)
}
