package colgen

import (
	"errors"
	"fmt"
	"math"

	"github.com/cutstock2d/cutstock2d/colset"
	"github.com/cutstock2d/cutstock2d/instance"
	"github.com/cutstock2d/cutstock2d/lpsolve"
	"github.com/cutstock2d/cutstock2d/pricing"
)

var posInf = math.Inf(1)

// VarKind distinguishes a Y-column variable from an X-column variable in a
// BranchConstraint or a VarRef (spec.md §4.6 "lower index first (Y-columns
// before X-columns)").
type VarKind int

const (
	VarY VarKind = iota
	VarX
)

// ColumnSet is the column set owned by one B&B node: a slice of Y-columns
// and a slice of X-columns, in stable append order. Column order never
// changes once assigned — branching only ever appends, so a VarRef/
// BranchConstraint's Index remains valid across the lifetime of a node and
// all its descendants (spec.md §3 "Ownership").
type ColumnSet struct {
	Y []colset.YColumn
	X []colset.XColumn
}

// Clone deep-copies the column set, the shape every B&B child needs so it
// can diverge from its parent without aliasing slices (spec.md §3 "children
// start as deep copies of the parent's column set").
func (cs ColumnSet) Clone() ColumnSet {
	out := ColumnSet{
		Y: make([]colset.YColumn, len(cs.Y)),
		X: make([]colset.XColumn, len(cs.X)),
	}
	for i, y := range cs.Y {
		out.Y[i] = colset.YColumn{Counts: append([]int(nil), y.Counts...)}
	}
	for i, x := range cs.X {
		out.X[i] = colset.XColumn{StripType: x.StripType, Counts: append([]int(nil), x.Counts...)}
	}

	return out
}

// BoundKind distinguishes the two branch directions of spec.md §4.6: the
// down branch caps a variable's upper bound in place (a plain column-bound
// change), while the up branch forces it to a lower bound. A lower bound
// cannot be expressed as a column-bound change — the oracle only supports
// [0, UB] column bounds — so it is instead expressed as a dedicated ">="
// row with a single unit coefficient on that variable's column, following
// the same row shape every other RMP constraint already uses.
type BoundKind int

const (
	UpperBound BoundKind = iota
	LowerBound
)

// BranchConstraint restricts one RMP variable, per spec.md §3 "list of
// branch constraints {(var-id, bound)}". Kind+Index identifies the
// variable by its position in ColumnSet.Y or ColumnSet.X at the time the
// constraint was created — that position never changes, since branching
// only ever appends columns. Op selects which direction Bound applies in.
type BranchConstraint struct {
	Kind  VarKind
	Index int
	Bound float64
	Op    BoundKind
}

// Result is everything a B&B node needs out of one column-generation run:
// the (possibly extended) column set, the LP lower bound, the primal
// values aligned to the returned column set, and the duals of the final
// solve (strip-balance Pi, demand Beta — Beta is full length N, with 0 for
// elided zero-demand items).
type Result struct {
	Columns   ColumnSet
	LB        float64
	YPrimal   []float64
	XPrimal   []float64
	Pi        []float64
	Beta      []float64
	Iterations int
}

const rcEpsDefault = 1e-6

// Run executes spec.md §4.5's RMP<->pricing loop for one node: build the
// RMP from cols with branch's upper bounds applied, solve, price, extend,
// repeat, up to maxIter solves. It returns ErrIterationLimit (wrapped,
// non-fatal per spec.md §7) if the loop is cut off before convergence; the
// Result is still valid and usable in that case. lpsolve.ErrInfeasible is
// returned as-is — callers decide whether that's a pruned node or a fatal
// root failure (spec.md §7).
func Run(inst instance.Instance, cols ColumnSet, branch []BranchConstraint, pricer pricing.Pricer, maxIter int, rcEps float64) (Result, error) {
	if rcEps <= 0 {
		rcEps = rcEpsDefault
	}

	J := len(inst.Strips)
	demandRowOf := make([]int, len(inst.Items))
	var activeDemandItems []int
	for _, it := range inst.Items {
		demandRowOf[it.Index] = -1
	}
	row := J
	for _, it := range inst.Items {
		if it.Demand > 0 {
			demandRowOf[it.Index] = row
			activeDemandItems = append(activeDemandItems, it.Index)
			row++
		}
	}
	m := row

	o := lpsolve.Open()
	defer o.Close()

	yUB := make([]float64, len(cols.Y))
	xUB := make([]float64, len(cols.X))
	for i := range yUB {
		yUB[i] = posInf
	}
	for i := range xUB {
		xUB[i] = posInf
	}

	var lowerBounds []BranchConstraint
	for _, bc := range branch {
		if bc.Op == LowerBound {
			lowerBounds = append(lowerBounds, bc)

			continue
		}
		switch bc.Kind {
		case VarY:
			if bc.Index >= 0 && bc.Index < len(yUB) {
				yUB[bc.Index] = bc.Bound
			}
		case VarX:
			if bc.Index >= 0 && bc.Index < len(xUB) {
				xUB[bc.Index] = bc.Bound
			}
		}
	}

	totalRows := m + len(lowerBounds)

	rowLB := make([]float64, totalRows)
	for _, idx := range activeDemandItems {
		rowLB[demandRowOf[idx]] = float64(inst.Items[idx].Demand)
	}
	for k, bc := range lowerBounds {
		rowLB[m+k] = bc.Bound
	}
	rowUB := make([]float64, totalRows)
	for i := range rowUB {
		rowUB[i] = posInf
	}

	specs := make([]lpsolve.ColumnSpec, 0, len(cols.Y)+len(cols.X))
	for i, y := range cols.Y {
		specs = append(specs, yColumnSpec(y, yUB[i]))
	}
	for i, x := range cols.X {
		specs = append(specs, xColumnSpec(inst, x, demandRowOf, xUB[i]))
	}

	// Each lower-bound branch constraint pins its own RMP row: a unit
	// coefficient on the one structural column it targets, nothing on any
	// other column (including columns pricing adds later), so the row
	// reads exactly "this column's value >= bound".
	for k, bc := range lowerBounds {
		row := m + k
		var colIdx int
		switch bc.Kind {
		case VarY:
			colIdx = bc.Index
		case VarX:
			colIdx = len(cols.Y) + bc.Index
		}
		if colIdx < 0 || colIdx >= len(specs) {
			continue
		}
		specs[colIdx].Coeffs[row] = 1
	}

	if err := o.Build(rowLB, rowUB, specs); err != nil {
		return Result{}, fmt.Errorf("colgen: build RMP: %w", err)
	}

	iter := 0
	for {
		iter++

		if err := o.Solve(); err != nil {
			if errors.Is(err, lpsolve.ErrInfeasible) {
				return Result{}, lpsolve.ErrInfeasible
			}

			return Result{}, fmt.Errorf("colgen: solve RMP: %w", err)
		}

		atLimit := iter >= maxIter

		pi := make([]float64, J)
		for j := 0; j < J; j++ {
			d, err := o.Dual(j)
			if err != nil {
				return Result{}, fmt.Errorf("colgen: read pi: %w", err)
			}
			pi[j] = d
		}
		beta := make([]float64, len(inst.Items))
		for _, idx := range activeDemandItems {
			d, err := o.Dual(demandRowOf[idx])
			if err != nil {
				return Result{}, fmt.Errorf("colgen: read beta: %w", err)
			}
			beta[idx] = d
		}

		y, z1, err := pricer.SolveSP1(inst, pi)
		if err != nil {
			return Result{}, fmt.Errorf("colgen: SP1: %w", err)
		}
		improvingY := z1 > 1+rcEps

		var improved bool
		var improvingX []colset.XColumn
		if !improvingY {
			for t := range inst.Strips {
				x, z2, err := pricer.SolveSP2(inst, t, beta)
				if err != nil {
					return Result{}, fmt.Errorf("colgen: SP2(%d): %w", t, err)
				}
				if z2 > pi[t]+rcEps {
					if err := colset.ValidateX(inst, x); err != nil {
						return Result{}, fmt.Errorf("colgen: SP2(%d) produced invalid column: %w", t, err)
					}
					improvingX = append(improvingX, x)
					improved = true
				}
			}
		}

		if !improvingY && !improved {
			res, err := snapshot(o, inst, cols, J, demandRowOf)
			if err != nil {
				return Result{}, err
			}
			res.Iterations = iter

			return res, nil
		}

		if atLimit {
			res, err := snapshot(o, inst, cols, J, demandRowOf)
			if err != nil {
				return Result{}, err
			}
			res.Iterations = iter

			return res, fmt.Errorf("%w: after %d iterations", ErrIterationLimit, iter)
		}

		if improvingY {
			if err := colset.ValidateY(inst, y); err != nil {
				return Result{}, fmt.Errorf("colgen: SP1 produced invalid column: %w", err)
			}
			cols.Y = append(cols.Y, y)
			o.AddColumn(yColumnSpec(y, posInf))

			continue
		}

		for _, x := range improvingX {
			cols.X = append(cols.X, x)
			o.AddColumn(xColumnSpec(inst, x, demandRowOf, posInf))
		}
	}
}

func snapshot(o *lpsolve.Oracle, inst instance.Instance, cols ColumnSet, J int, demandRowOf []int) (Result, error) {
	yPrimal := make([]float64, len(cols.Y))
	for i := range cols.Y {
		v, err := o.Primal(i)
		if err != nil {
			return Result{}, fmt.Errorf("colgen: read Y primal: %w", err)
		}
		yPrimal[i] = v
	}
	xPrimal := make([]float64, len(cols.X))
	for i := range cols.X {
		v, err := o.Primal(len(cols.Y) + i)
		if err != nil {
			return Result{}, fmt.Errorf("colgen: read X primal: %w", err)
		}
		xPrimal[i] = v
	}

	var lb float64
	for _, v := range yPrimal {
		lb += v
	}

	pi := make([]float64, J)
	for j := 0; j < J; j++ {
		d, err := o.Dual(j)
		if err != nil {
			return Result{}, fmt.Errorf("colgen: snapshot pi: %w", err)
		}
		pi[j] = d
	}
	beta := make([]float64, len(inst.Items))
	for _, it := range inst.Items {
		if demandRowOf[it.Index] < 0 {
			continue
		}
		d, err := o.Dual(demandRowOf[it.Index])
		if err != nil {
			return Result{}, fmt.Errorf("colgen: snapshot beta: %w", err)
		}
		beta[it.Index] = d
	}

	return Result{Columns: cols, LB: lb, YPrimal: yPrimal, XPrimal: xPrimal, Pi: pi, Beta: beta}, nil
}

func yColumnSpec(y colset.YColumn, ub float64) lpsolve.ColumnSpec {
	coeffs := make(map[int]float64, len(y.Counts))
	for j, c := range y.Counts {
		if c != 0 {
			coeffs[j] = float64(c)
		}
	}

	return lpsolve.ColumnSpec{Coeffs: coeffs, Obj: 1, UB: ub}
}

func xColumnSpec(inst instance.Instance, x colset.XColumn, demandRowOf []int, ub float64) lpsolve.ColumnSpec {
	coeffs := map[int]float64{x.StripType: -1}
	for i, c := range x.Counts {
		if c == 0 {
			continue
		}
		row := demandRowOf[i]
		if row < 0 {
			continue
		}
		coeffs[row] = float64(c)
	}

	return lpsolve.ColumnSpec{Coeffs: coeffs, Obj: 0, UB: ub}
}
