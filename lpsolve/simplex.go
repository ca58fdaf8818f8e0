package lpsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	feasibilityEps = 1e-7
	pivotEps       = 1e-9
	maxIterations  = 20000
)

// colVector returns the dense m-length column for ref in the original
// (pre-basis-transform) coordinate system.
func (o *Oracle) colVector(ref colRef) []float64 {
	v := make([]float64, o.m)
	switch ref.kind {
	case kindStructural:
		for row, coef := range o.structural[ref.idx].entries {
			v[row] = coef
		}
	case kindSurplus:
		row := o.rowOfSurplus(ref.idx)
		v[row] = -1
	case kindArtificial:
		v[ref.idx] = 1
	}

	return v
}

// rowOfSurplus inverts surplusOfRow (small m, linear scan is fine).
func (o *Oracle) rowOfSurplus(localIdx int) int {
	for row, s := range o.surplusOfRow {
		if s == localIdx {
			return row
		}
	}

	return -1
}

func (o *Oracle) cost(ref colRef, phase int) float64 {
	if phase == 1 {
		if ref.kind == kindArtificial {
			return 1
		}

		return 0
	}
	if ref.kind == kindStructural {
		return o.structural[ref.idx].obj
	}

	return 0
}

func (o *Oracle) ub(ref colRef) float64 {
	if ref.kind == kindStructural {
		return o.structural[ref.idx].ub
	}

	return math.Inf(1)
}

func (o *Oracle) forbidden(ref colRef, phase int) bool {
	return phase == 2 && ref.kind == kindArtificial
}

// allRefs enumerates every column in a fixed, deterministic order:
// structural (ascending index) then surplus then artificial (both ascending
// by row). This order is also the tie-break order used when two entering
// candidates have equal reduced cost, keeping the simplex path reproducible.
func (o *Oracle) allRefs() []colRef {
	refs := make([]colRef, 0, len(o.structural)+len(o.surplusOfRow)+o.m)
	for j := range o.structural {
		refs = append(refs, colRef{kind: kindStructural, idx: j})
	}
	nSurplus := 0
	for _, s := range o.surplusOfRow {
		if s >= 0 {
			nSurplus++
		}
	}
	for s := 0; s < nSurplus; s++ {
		refs = append(refs, colRef{kind: kindSurplus, idx: s})
	}
	for i := 0; i < o.m; i++ {
		refs = append(refs, colRef{kind: kindArtificial, idx: i})
	}

	return refs
}

func (o *Oracle) isBasic(ref colRef) bool {
	for _, b := range o.basis {
		if b == ref {
			return true
		}
	}

	return false
}

// adjustedRHS computes b - sum_{nonbasic at upper} A_j * ub_j, the
// right-hand side the current basis must solve exactly.
func (o *Oracle) adjustedRHS() []float64 {
	rhs := make([]float64, o.m)
	copy(rhs, o.rhs)
	for ref, atUpper := range o.nonbasicAtUpper {
		if !atUpper {
			continue
		}
		ubj := o.ub(ref)
		col := o.colVector(ref)
		for i := 0; i < o.m; i++ {
			rhs[i] -= col[i] * ubj
		}
	}

	return rhs
}

func (o *Oracle) computeXB() []float64 {
	adj := o.adjustedRHS()
	b := mat.NewVecDense(o.m, adj)
	xb := mat.NewVecDense(o.m, nil)
	xb.MulVec(o.binv, b)
	out := make([]float64, o.m)
	for i := 0; i < o.m; i++ {
		out[i] = xb.AtVec(i)
	}

	return out
}

func (o *Oracle) computeY(phase int) []float64 {
	cB := mat.NewVecDense(o.m, nil)
	for i, ref := range o.basis {
		cB.SetVec(i, o.cost(ref, phase))
	}
	y := mat.NewVecDense(o.m, nil)
	y.MulVec(o.binv.T(), cB)
	out := make([]float64, o.m)
	for i := 0; i < o.m; i++ {
		out[i] = y.AtVec(i)
	}

	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// runSimplex drives the bounded-variable primal simplex to optimality for
// the given phase (1: minimize total artificial infeasibility; 2: minimize
// the true objective, artificials forbidden from entering) from the
// current basis, and returns the resulting objective value. It mutates
// o.basis, o.binv, and o.nonbasicAtUpper in place and caches the final
// basic solution into o.xBCache.
func (o *Oracle) runSimplex(phase int) (float64, error) {
	for iter := 0; ; iter++ {
		if iter > maxIterations {
			return 0, fmt.Errorf("%w: simplex exceeded %d iterations", ErrInternal, maxIterations)
		}

		xB := o.computeXB()
		y := o.computeY(phase)

		type candidate struct {
			ref     colRef
			dir     float64
			score   float64
			hasBest bool
		}
		var best candidate

		for _, ref := range o.allRefs() {
			if o.isBasic(ref) || o.forbidden(ref, phase) {
				continue
			}
			d := o.cost(ref, phase) - dot(y, o.colVector(ref))
			atUpper := o.nonbasicAtUpper[ref]
			switch {
			case !atUpper && d < -pivotEps:
				if -d > best.score {
					best = candidate{ref: ref, dir: 1, score: -d, hasBest: true}
				}
			case atUpper && d > pivotEps:
				if d > best.score {
					best = candidate{ref: ref, dir: -1, score: d, hasBest: true}
				}
			}
		}

		if !best.hasBest {
			// Optimal for this phase: cache the final solution and objective.
			o.xBCache = xB
			obj := 0.0
			for i, ref := range o.basis {
				obj += o.cost(ref, phase) * xB[i]
			}
			for ref, atUpper := range o.nonbasicAtUpper {
				if atUpper {
					obj += o.cost(ref, phase) * o.ub(ref)
				}
			}

			return obj, nil
		}

		enter := best.ref
		dir := best.dir
		colEnter := o.colVector(enter)
		alphaVec := mat.NewVecDense(o.m, nil)
		alphaVec.MulVec(o.binv, mat.NewVecDense(o.m, colEnter))

		ownLimit := math.Inf(1)
		if !math.IsInf(o.ub(enter), 1) {
			ownLimit = o.ub(enter)
		}

		t := ownLimit
		leavingRow := -1
		leavingBound := 0.0

		for i := 0; i < o.m; i++ {
			coef := alphaVec.AtVec(i) * dir
			if coef > pivotEps {
				lim := xB[i] / coef
				if lim < t-1e-12 {
					t = lim
					leavingRow = i
					leavingBound = 0
				}
			} else if coef < -pivotEps {
				ubI := o.ub(o.basis[i])
				if math.IsInf(ubI, 1) {
					continue
				}
				lim := (ubI - xB[i]) / (-coef)
				if lim < t-1e-12 {
					t = lim
					leavingRow = i
					leavingBound = ubI
				}
			}
		}

		if math.IsInf(t, 1) {
			return 0, fmt.Errorf("%w: unbounded LP", ErrInternal)
		}
		if t < 0 {
			t = 0
		}

		if leavingRow == -1 {
			// Bound flip: entering variable swings to its other bound, no basis change.
			if dir > 0 {
				o.nonbasicAtUpper[enter] = true
			} else {
				delete(o.nonbasicAtUpper, enter)
			}
			continue
		}

		leaveRef := o.basis[leavingRow]
		if leavingBound > 0 {
			o.nonbasicAtUpper[leaveRef] = true
		} else {
			delete(o.nonbasicAtUpper, leaveRef)
		}
		delete(o.nonbasicAtUpper, enter)
		o.basis[leavingRow] = enter

		if err := pivotBinv(o.binv, alphaVec, leavingRow); err != nil {
			return 0, err
		}
	}
}

// pivotBinv performs the Gauss-Jordan update of the basis inverse for a
// pivot on row leavingRow with pivot column alpha = Binv*A_enter.
func pivotBinv(binv *mat.Dense, alpha *mat.VecDense, leavingRow int) error {
	m, _ := binv.Dims()
	pivot := alpha.AtVec(leavingRow)
	if math.Abs(pivot) < pivotEps {
		return fmt.Errorf("%w: degenerate pivot element %g", ErrInternal, pivot)
	}

	pivotRow := make([]float64, m)
	for j := 0; j < m; j++ {
		pivotRow[j] = binv.At(leavingRow, j) / pivot
	}
	binv.SetRow(leavingRow, pivotRow)

	for i := 0; i < m; i++ {
		if i == leavingRow {
			continue
		}
		factor := alpha.AtVec(i)
		if factor == 0 {
			continue
		}
		for j := 0; j < m; j++ {
			binv.Set(i, j, binv.At(i, j)-factor*pivotRow[j])
		}
	}

	return nil
}
