package lpsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ColumnSpec describes one column to add to the LP: its coefficients keyed
// by row index (rows absent from the map are implicitly zero), its
// objective coefficient, and its upper bound (use math.Inf(1) for none).
type ColumnSpec struct {
	Coeffs map[int]float64
	Obj    float64
	UB     float64
}

type colKind uint8

const (
	kindStructural colKind = iota
	kindSurplus
	kindArtificial
)

// colRef identifies one column in the combined structural/surplus/artificial
// column space. Structural columns are addressable by the caller (Build's
// initial cols, then AddColumn) via their index into Oracle.structural;
// surplus and artificial columns are internal bookkeeping, one per row.
type colRef struct {
	kind colKind
	idx  int
}

type structCol struct {
	entries map[int]float64
	obj     float64
	ub      float64
}

// Oracle is a scoped LP solver handle: one Oracle models one RMP or one
// pricing MIP's LP relaxation. Callers acquire an Oracle with Open, use it
// for the lifetime of one node (or one pricing call), and must Close it —
// mirroring the scoped resource-acquisition pattern spec.md §5 requires of
// every LP handle.
type Oracle struct {
	m            int
	rowEq        []bool    // true: row_lb == row_ub (equality); false: row_ub == +Inf
	rhs          []float64 // row_lb, which must be >= 0 for every row (see doc.go)
	surplusOfRow []int     // row index -> surplus-column local index, or -1 if equality row

	structural []*structCol

	basis           []colRef
	binv            *mat.Dense
	nonbasicAtUpper map[colRef]bool

	phase1Done bool
	solved     bool
	lastPrimal []float64
	lastDual   []float64
	xBCache    []float64
}

// Open constructs a new, empty Oracle. Call Build immediately afterward.
// Open/Close bracket the scoped lifetime spec.md §5 describes; Open itself
// allocates no row/column state (Build does), so Open never fails.
func Open() *Oracle {
	return &Oracle{}
}

// Close releases the Oracle's resources. The revised-simplex engine holds
// no OS-level resources (no file descriptors, no cgo handles to an external
// LP library), so Close is a no-op today; it exists so call sites hold the
// same acquire/defer-release shape regardless of which LP oracle
// implementation is wired in, per spec.md §5.
func (o *Oracle) Close() {}

// Build creates the LP: m = len(rowLB) rows, each either an inequality
// (rowUB[i] == +Inf, meaning sum >= rowLB[i]) or an equality
// (rowUB[i] == rowLB[i]), plus the initial column set. rowLB must be
// entrywise non-negative (see doc.go); a finite, non-degenerate range
// (rowLB[i] < rowUB[i] < +Inf) is rejected as unsupported.
func (o *Oracle) Build(rowLB, rowUB []float64, cols []ColumnSpec) error {
	if len(rowLB) != len(rowUB) {
		return fmt.Errorf("%w: len(rowLB)=%d != len(rowUB)=%d", ErrInternal, len(rowLB), len(rowUB))
	}
	m := len(rowLB)
	o.m = m
	o.rowEq = make([]bool, m)
	o.rhs = make([]float64, m)
	o.surplusOfRow = make([]int, m)
	nSurplus := 0
	for i := 0; i < m; i++ {
		if rowLB[i] < 0 {
			return fmt.Errorf("%w: row %d has negative lower bound %g, unsupported", ErrInternal, i, rowLB[i])
		}
		o.rhs[i] = rowLB[i]
		if math.IsInf(rowUB[i], 1) {
			o.rowEq[i] = false
			o.surplusOfRow[i] = nSurplus
			nSurplus++
		} else if rowUB[i] == rowLB[i] {
			o.rowEq[i] = true
			o.surplusOfRow[i] = -1
		} else {
			return fmt.Errorf("%w: row %d has a finite non-degenerate range [%g, %g], unsupported", ErrInternal, i, rowLB[i], rowUB[i])
		}
	}

	o.structural = make([]*structCol, 0, len(cols))
	for _, c := range cols {
		o.structural = append(o.structural, &structCol{entries: c.Coeffs, obj: c.Obj, ub: c.UB})
	}

	// Initial basis: one artificial variable per row, identity Binv.
	o.basis = make([]colRef, m)
	for i := 0; i < m; i++ {
		o.basis[i] = colRef{kind: kindArtificial, idx: i}
	}
	o.binv = mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		o.binv.Set(i, i, 1)
	}
	o.nonbasicAtUpper = make(map[colRef]bool)
	o.phase1Done = false
	o.solved = false

	return nil
}

// AddColumn appends a new structural column, nonbasic at its lower bound
// (zero). The current basis and its inverse are untouched — the warm-start
// basis spec.md §4.3 requires survives unchanged until the next Solve.
// The returned id is the variable index to pass to Primal.
func (o *Oracle) AddColumn(spec ColumnSpec) int {
	o.structural = append(o.structural, &structCol{entries: spec.Coeffs, obj: spec.Obj, ub: spec.UB})
	o.solved = false

	return len(o.structural) - 1
}

// Solve drives the LP to dual optimality: phase 1 (only on the first call
// after Build) restores
// primal feasibility by minimizing total artificial infeasibility; phase 2
// minimizes the true objective from there. Subsequent calls after AddColumn
// resume phase 2 from the previous optimal basis, which is still primal
// feasible (a new nonbasic column at zero changes nothing) — this is the
// warm start spec.md §4.3 mandates.
func (o *Oracle) Solve() error {
	if !o.phase1Done {
		obj, err := o.runSimplex(1)
		if err != nil {
			return err
		}
		if obj > feasibilityEps {
			return ErrInfeasible
		}
		o.phase1Done = true
	}

	if _, err := o.runSimplex(2); err != nil {
		return err
	}

	o.cachePrimal()
	o.cacheDual()
	o.solved = true

	return nil
}

// Primal returns the value of structural variable v (0-indexed in Build/
// AddColumn order) after the most recent successful Solve.
func (o *Oracle) Primal(v int) (float64, error) {
	if !o.solved {
		return 0, ErrNotSolved
	}
	if v < 0 || v >= len(o.lastPrimal) {
		return 0, fmt.Errorf("%w: variable %d out of range [0,%d)", ErrInternal, v, len(o.lastPrimal))
	}

	return o.lastPrimal[v], nil
}

// Dual returns the shadow price of row r after the most recent successful
// Solve. Negative zero is normalized to +0 per spec.md §4.3.
func (o *Oracle) Dual(r int) (float64, error) {
	if !o.solved {
		return 0, ErrNotSolved
	}
	if r < 0 || r >= len(o.lastDual) {
		return 0, fmt.Errorf("%w: row %d out of range [0,%d)", ErrInternal, r, len(o.lastDual))
	}
	d := o.lastDual[r]
	if d == 0 {
		d = 0 // normalizes -0 to +0
	}

	return d, nil
}

func (o *Oracle) cachePrimal() {
	o.lastPrimal = make([]float64, len(o.structural))
	for j := range o.structural {
		ref := colRef{kind: kindStructural, idx: j}
		o.lastPrimal[j] = o.valueOf(ref)
	}
}

func (o *Oracle) cacheDual() {
	o.lastDual = o.computeY(2)
}

// valueOf returns the current value of column ref given the cached basic
// solution (xB computed inside runSimplex's last iteration) or its nonbasic
// bound.
func (o *Oracle) valueOf(ref colRef) float64 {
	for i, b := range o.basis {
		if b == ref {
			return o.xBCache[i]
		}
	}
	if o.nonbasicAtUpper[ref] {
		return o.ub(ref)
	}

	return 0
}
