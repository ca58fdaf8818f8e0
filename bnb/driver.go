package bnb

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cutstock2d/cutstock2d/colgen"
	"github.com/cutstock2d/cutstock2d/instance"
	"github.com/cutstock2d/cutstock2d/lpsolve"
	"github.com/cutstock2d/cutstock2d/pricing"
)

// Params are the tunable circuit breakers and tolerances spec.md §9 calls
// out as hard-coded in the source and directs the rewrite to expose as
// configuration.
type Params struct {
	MaxNodes  int
	MaxCGIter int
	Epsilon   float64
	RCEpsilon float64
}

// DefaultParams returns spec.md §4.6/§4.5's defaults: MAX_NODES = 100,
// MAX_CG_ITER = 100, epsilon = 1e-6 for both fractional and reduced-cost
// tests.
func DefaultParams() Params {
	return Params{MaxNodes: 100, MaxCGIter: 100, Epsilon: 1e-6, RCEpsilon: 1e-6}
}

// Incumbent is the best integer solution found: its column set and the
// (integer-valued) primal aligned to it.
type Incumbent struct {
	Columns colgen.ColumnSet
	YValues []float64
	XValues []float64
}

// Result is the terminal state of the search: the proven or best-effort
// objective UB, the optimality gap (spec.md §4.6), the incumbent solution,
// and node-count bookkeeping.
type Result struct {
	UB            float64
	Gap           float64
	Incumbent     Incumbent
	NodesCreated  int
	NodesExplored int
	HitNodeLimit  bool
}

// Solve runs the branch-and-bound driver of spec.md §4.6 from a root built
// on seed with no branch constraints. It returns ErrNodeLimit (wrapped,
// non-fatal) if MAX_NODES is reached before the open set is exhausted; the
// Result is still the best incumbent found and its residual gap.
// ErrRootInfeasible and any oracle-internal error are fatal.
func Solve(inst instance.Instance, seed colgen.ColumnSet, pricer pricing.Pricer, params Params) (Result, error) {
	if params.MaxNodes <= 0 {
		params.MaxNodes = DefaultParams().MaxNodes
	}
	if params.MaxCGIter <= 0 {
		params.MaxCGIter = DefaultParams().MaxCGIter
	}
	if params.Epsilon <= 0 {
		params.Epsilon = DefaultParams().Epsilon
	}
	if params.RCEpsilon <= 0 {
		params.RCEpsilon = DefaultParams().RCEpsilon
	}

	d := &driver{inst: inst, pricer: pricer, params: params, ub: math.Inf(1)}
	rootID := d.pool.new(-1, 0, seed, nil)
	d.nodesCreated = 1

	if err := d.solveNode(rootID); err != nil {
		return Result{}, err
	}
	root := d.pool.get(rootID)
	if root.Pruned {
		return Result{}, ErrRootInfeasible
	}
	d.nodesExplored = 1

	if root.Integer {
		d.adopt(root)
	} else {
		d.open = append(d.open, rootID)
	}

	var nodeLimitHit bool
	for len(d.open) > 0 {
		if d.nodesCreated+2 > d.params.MaxNodes {
			nodeLimitHit = true

			break
		}

		id := d.pickBestBound()
		node := d.pool.get(id)
		if node.LB >= d.ub-d.params.Epsilon {
			node.Pruned = true

			continue
		}

		if err := d.branch(node); err != nil {
			return Result{}, err
		}
	}

	minOpenLB := math.Inf(1)
	for _, id := range d.open {
		n := d.pool.get(id)
		if !n.Pruned && n.LB < minOpenLB {
			minOpenLB = n.LB
		}
	}

	gap := 0.0
	if len(d.open) > 0 && !math.IsInf(d.ub, 1) {
		gap = (d.ub - minOpenLB) / d.ub
	}

	res := Result{
		UB:            d.ub,
		Gap:           gap,
		Incumbent:     d.incumbent,
		NodesCreated:  d.nodesCreated,
		NodesExplored: d.nodesExplored,
		HitNodeLimit:  nodeLimitHit,
	}
	if nodeLimitHit {
		return res, fmt.Errorf("%w: after %d nodes", ErrNodeLimit, d.nodesCreated)
	}

	return res, nil
}

type driver struct {
	inst   instance.Instance
	pricer pricing.Pricer
	params Params

	pool pool
	open []int

	ub            float64
	incumbent     Incumbent
	nodesCreated  int
	nodesExplored int
}

// solveNode runs the column-generation engine for node id and records the
// outcome on the node: Pruned (RMP infeasible — this branch's constraints
// cut off every feasible pattern), or Solved with LB/primal populated
// (possibly from a loose, iteration-limited RMP, which is still a valid
// lower bound per spec.md §4.5).
func (d *driver) solveNode(id int) error {
	node := d.pool.get(id)
	res, err := colgen.Run(d.inst, node.Cols, node.Branch, d.pricer, d.params.MaxCGIter, d.params.RCEpsilon)
	if errors.Is(err, lpsolve.ErrInfeasible) {
		node.Pruned = true

		return nil
	}
	if err != nil && !errors.Is(err, colgen.ErrIterationLimit) {
		return fmt.Errorf("bnb: node %d: %w", id, err)
	}

	node.Cols = res.Columns
	node.LB = res.LB
	node.YPrimal = res.YPrimal
	node.XPrimal = res.XPrimal
	node.Solved = true

	kind, idx, val, ok := selectBranchVar(res.YPrimal, res.XPrimal, d.inst, d.params.Epsilon)
	if !ok {
		node.Integer = true
	} else {
		node.BranchKind = kind
		node.BranchIndex = idx
		node.BranchValue = val
		node.Floor = math.Floor(val)
		node.Ceil = math.Ceil(val)
	}

	return nil
}

// selectBranchVar implements spec.md §4.6's rule: among variables with
// value in (eps, d_max) and fractional part in (eps, 1-eps), pick the one
// with the largest fractional part; ties go to the lower index, Y-columns
// before X-columns. d_max is the instance's largest single demand, an
// upper bound no legitimate pattern count should exceed.
func selectBranchVar(yPrimal, xPrimal []float64, inst instance.Instance, eps float64) (colgen.VarKind, int, float64, bool) {
	dMax := 0.0
	for _, it := range inst.Items {
		if float64(it.Demand) > dMax {
			dMax = float64(it.Demand)
		}
	}

	bestFrac := -1.0
	bestKind := colgen.VarY
	bestIdx := -1
	bestVal := 0.0

	consider := func(kind colgen.VarKind, idx int, v float64) {
		if v <= eps || v >= dMax {
			return
		}
		frac := v - math.Floor(v)
		if frac <= eps || frac >= 1-eps {
			return
		}
		if frac > bestFrac+eps {
			bestFrac = frac
			bestKind = kind
			bestIdx = idx
			bestVal = v
		}
	}

	for i, v := range yPrimal {
		consider(colgen.VarY, i, v)
	}
	for i, v := range xPrimal {
		consider(colgen.VarX, i, v)
	}

	return bestKind, bestIdx, bestVal, bestIdx >= 0
}

// branch spawns the left (floor, down) and right (ceil, up) children of
// node, in that order (spec.md §4.6 step 4), solves each, and either
// adopts it as the new incumbent, prunes it, or adds it to the open set.
// The down child caps the branch variable's upper bound at floor(v*); the
// up child forces it to a lower bound of ceil(v*) via a dedicated RMP row
// (colgen.LowerBound) rather than a column-bound cap — a cap can never
// exclude the parent's own optimal basis (v* < ceil(v*) always holds, so
// UB = ceil(v*) would be non-binding at the parent's solution), which
// would otherwise leave the up child's LP optimum identical to the
// parent's and the search unable to make progress on that spine.
func (d *driver) branch(node *Node) error {
	node.Branched = true

	children := []struct {
		bound float64
		op    colgen.BoundKind
	}{
		{node.Floor, colgen.UpperBound},
		{node.Ceil, colgen.LowerBound},
	}

	for _, c := range children {
		branch := append(append([]colgen.BranchConstraint(nil), node.Branch...),
			colgen.BranchConstraint{Kind: node.BranchKind, Index: node.BranchIndex, Bound: c.bound, Op: c.op})
		cols := node.Cols.Clone()
		childID := d.pool.new(node.ID, node.Depth+1, cols, branch)
		d.nodesCreated++

		if err := d.solveNode(childID); err != nil {
			return err
		}
		d.nodesExplored++
		child := d.pool.get(childID)

		if child.Pruned {
			continue
		}
		if child.LB >= d.ub-d.params.Epsilon {
			child.Pruned = true

			continue
		}
		if child.Integer {
			d.adopt(child)

			continue
		}
		d.open = append(d.open, childID)
	}

	return nil
}

func (d *driver) adopt(node *Node) {
	if node.LB >= d.ub {
		return
	}
	d.ub = node.LB
	d.incumbent = Incumbent{
		Columns: node.Cols,
		YValues: snapAll(node.YPrimal, d.params.Epsilon),
		XValues: snapAll(node.XPrimal, d.params.Epsilon),
	}
}

func snapAll(vs []float64, eps float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		r := math.Round(v)
		if math.Abs(v-r) <= eps {
			out[i] = r
		} else {
			out[i] = v
		}
	}

	return out
}

// pickBestBound selects the open node with the smallest LB, tie-broken by
// lowest creation order (spec.md §4.6 step 7), and removes it from the
// open set.
func (d *driver) pickBestBound() int {
	sort.SliceStable(d.open, func(a, b int) bool {
		na, nb := d.pool.get(d.open[a]), d.pool.get(d.open[b])
		if na.LB != nb.LB {
			return na.LB < nb.LB
		}

		return na.ID < nb.ID
	})
	id := d.open[0]
	d.open = d.open[1:]

	return id
}
