package pricing

import (
	"fmt"

	"github.com/cutstock2d/cutstock2d/colset"
	"github.com/cutstock2d/cutstock2d/instance"
)

// Pricer is the uniform capability every pricing backend exposes: solve
// SP1 given the strip-balance duals, and solve SP2 for one strip type
// given the demand duals. Both return the optimum value alongside the
// column that attains it — spec.md §4.5 applies the reduced-cost tests
// (z1 > 1+eps_rc, z2(t) > pi_t+eps_rc) itself, so Pricer never compares
// against the RMP's objective coefficients.
type Pricer interface {
	SolveSP1(inst instance.Instance, pi []float64) (colset.YColumn, float64, error)
	SolveSP2(inst instance.Instance, stripType int, beta []float64) (colset.XColumn, float64, error)
}

// Method selects a Pricer backend (spec.md §4.4's "PricingMethod selector").
type Method int

const (
	Knapsack Method = iota
	ArcFlow
	DP
)

func (m Method) String() string {
	switch m {
	case Knapsack:
		return "knapsack"
	case ArcFlow:
		return "arcflow"
	case DP:
		return "dp"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// New constructs the Pricer for the given backend selector.
func New(m Method) (Pricer, error) {
	switch m {
	case Knapsack:
		return knapsackPricer{}, nil
	case ArcFlow:
		return arcFlowPricer{}, nil
	case DP:
		return dpPricer{}, nil
	default:
		return nil, fmt.Errorf("pricing: unknown method %v", m)
	}
}

// knapItem is the shared input shape for the unbounded-knapsack recurrence:
// a candidate type with a stable Index (the strip or item type index,
// used for the lowest-index tie-break), a Size (width or length), and a
// Value (the dual price driving the objective).
type knapItem struct {
	Index int
	Size  int
	Value float64
}
